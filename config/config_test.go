package config

import (
	"testing"
	"time"

	mysqldriver "github.com/go-sql-driver/mysql"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDSN(t *testing.T) {
	tests := []struct {
		name     string
		db       DB
		wantUser string
		wantPass string
		wantAddr string
		wantName string
		wantErr  bool
	}{
		{
			name:     "discrete settings",
			db:       DB{User: "root", Pass: "secret", Host: "127.0.0.1", Port: "3306", Name: "c4knives"},
			wantUser: "root",
			wantPass: "secret",
			wantAddr: "127.0.0.1:3306",
			wantName: "c4knives",
		},
		{
			name:     "mysql url with default port",
			db:       DB{URL: "mysql://knives:pw@db.internal/shop"},
			wantUser: "knives",
			wantPass: "pw",
			wantAddr: "db.internal:3306",
			wantName: "shop",
		},
		{
			name:     "database url fallback",
			db:       DB{Alt: "mysql://knives:pw@db.internal:3307/shop"},
			wantUser: "knives",
			wantPass: "pw",
			wantAddr: "db.internal:3307",
			wantName: "shop",
		},
		{
			name:    "mysql url without database",
			db:      DB{URL: "mysql://knives:pw@db.internal:3306/"},
			wantErr: true,
		},
		{
			name:    "garbage dsn",
			db:      DB{URL: "not a dsn"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dsn, err := tt.db.ResolveDSN()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			mc, err := mysqldriver.ParseDSN(dsn)
			require.NoError(t, err)
			assert.Equal(t, tt.wantUser, mc.User)
			assert.Equal(t, tt.wantPass, mc.Passwd)
			assert.Equal(t, tt.wantAddr, mc.Addr)
			assert.Equal(t, tt.wantName, mc.DBName)
			assert.True(t, mc.ParseTime)
			assert.Equal(t, time.Local, mc.Loc)
		})
	}
}

func TestResolveDSNQueryParams(t *testing.T) {
	dsn, err := DB{URL: "mysql://knives:pw@db.internal/shop?timeout=5s"}.ResolveDSN()
	require.NoError(t, err)

	mc, err := mysqldriver.ParseDSN(dsn)
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, mc.Timeout)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("ADMIN_API_ROUTE", "/manage/")
	t.Setenv("CORS_ORIGINS", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvLocal, cfg.Env)
	assert.Equal(t, "5001", cfg.HTTPServer.Port)
	assert.Equal(t, "manage", cfg.AdminRoute)
	assert.Len(t, cfg.JWTSecret, 64, "random secret is generated when unset")
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins())
}

func TestAllowedOrigins(t *testing.T) {
	cfg := &Config{CorsOrigins: " https://c4knives.com, ,http://localhost:3000 "}
	assert.Equal(t, []string{"https://c4knives.com", "http://localhost:3000"}, cfg.AllowedOrigins())

	cfg.CorsOrigins = " , "
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins())
}
