package config

import (
	"fmt"
	"log"
	"net"
	"net/url"
	"os"
	"strings"
	"time"

	"c4knives-backend/models"

	mysqldriver "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	port := u.Port()
	if port == "" {
		port = "3306"
	}

	mc := newMySQLConfig()
	mc.User = u.User.Username()
	mc.Passwd, _ = u.User.Password()
	mc.Addr = net.JoinHostPort(u.Hostname(), port)
	mc.DBName = dbName
	for key, values := range u.Query() {
		if len(values) > 0 {
			mc.Params[key] = values[0]
		}
	}
	return mc.FormatDSN(), nil
}

func newMySQLConfig() *mysqldriver.Config {
	mc := mysqldriver.NewConfig()
	mc.Net = "tcp"
	mc.ParseTime = true
	mc.Loc = time.Local
	mc.Params = map[string]string{"charset": "utf8mb4"}
	return mc
}

// ResolveDSN prefers MYSQL_URL, then DATABASE_URL, then the discrete DB_* settings.
// A URL without the mysql:// scheme is taken as a ready-made DSN.
func (d DB) ResolveDSN() (string, error) {
	raw := strings.TrimSpace(d.URL)
	if raw == "" {
		raw = strings.TrimSpace(d.Alt)
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		if _, err := mysqldriver.ParseDSN(raw); err != nil {
			return "", fmt.Errorf("invalid mysql dsn: %w", err)
		}
		return raw, nil
	}

	mc := newMySQLConfig()
	mc.User = d.User
	mc.Passwd = d.Pass
	mc.Addr = net.JoinHostPort(d.Host, d.Port)
	mc.DBName = d.Name
	return mc.FormatDSN(), nil
}

// GormLogger writes SQL logs to stdout; verbose only outside prod.
func GormLogger(env string) logger.Interface {
	level := logger.Info
	if env == EnvProd {
		level = logger.Warn
	}
	return logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
			Colorful:                  env == EnvLocal,
		},
	)
}

// Migrate creates or updates every table the API uses.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Admin{},
		&models.Product{},
		&models.Spotlight{},
		&models.Testimonial{},
		&models.Metadata{},
		&models.ContactMessage{},
	)
}

func ConnectDatabase(cfg *Config) (*gorm.DB, error) {
	dsn, err := cfg.DB.ResolveDSN()
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: GormLogger(cfg.Env)})
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}
