package restaurant

import "github.com/m04kA/SMC-TableBookingService/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor
