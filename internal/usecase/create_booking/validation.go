package create_booking

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// normalizeRequest приводит имя и телефон гостя к каноничному виду
func normalizeRequest(req *Request) {
	req.GuestName = strings.TrimSpace(req.GuestName)
	req.GuestPhone = normalizePhone(req.GuestPhone)
}

// normalizePhone убирает форматирование и приводит номер к E.164
// Российские номера вида 8XXXXXXXXXX переводятся в +7XXXXXXXXXX
func normalizePhone(phone string) string {
	var b strings.Builder
	for i, r := range strings.TrimSpace(phone) {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '+' && i == 0:
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '(' || r == ')':
		default:
			// Неизвестный символ оставляем, чтобы e164 отклонил номер
			b.WriteRune(r)
		}
	}

	digits := b.String()
	if digits == "" || strings.HasPrefix(digits, "+") {
		return digits
	}
	if len(digits) == 11 && digits[0] == '8' {
		return "+7" + digits[1:]
	}
	return "+" + digits
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if err := validate.Struct(req); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return fmt.Errorf("%w: field %s failed on %q", ErrInvalidInput, fe.Field(), fe.Tag())
		}
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	return nil
}
