package admin

import "github.com/m04kA/WebMTour-Service/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor
