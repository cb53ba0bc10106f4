package config

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// DB is the shared connection pool, set by InitDB.
var DB *gorm.DB

// InitDB opens the database selected by DB_DRIVER.
func InitDB() {
	dialector, err := Dialector(App.DBDriver, App.DBDSN)
	if err != nil {
		Logger.Fatal("Invalid database configuration", zap.Error(err))
	}

	logLevel := gormlogger.Info
	if App.Production {
		logLevel = gormlogger.Warn
	}

	DB, err = gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(logLevel),
	})
	if err != nil {
		Logger.Fatal("Error connecting to the database", zap.Error(err))
	}
	Logger.Info("Database connected", zap.String("driver", App.DBDriver))
}

// Dialector maps a driver name to its gorm dialector. MySQL DSNs need
// parseTime=true so DATETIME columns scan into time.Time.
func Dialector(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case "", "mysql":
		return mysql.Open(dsn), nil
	case "sqlite":
		return sqlite.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}
}
