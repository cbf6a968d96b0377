package gateway

import (
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/orchardctl/cli/entity"
)

const (
	userAgentHeader = "orchardctl"
	probeTimeout    = 10 * time.Second
)

type Gateway struct {
	httpClient *http.Client
	openDB     func(serverName string, credentials *entity.SqlCredentials) (*sqlx.DB, error)
}

func New() *Gateway {
	return &Gateway{
		httpClient: &http.Client{
			Timeout: time.Second * 30,
		},
		openDB: openSqlServer,
	}
}
