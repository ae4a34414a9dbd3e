package booking

import (
	"github.com/m04kA/SMC-StayPlanner/pkg/dbmetrics"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor
