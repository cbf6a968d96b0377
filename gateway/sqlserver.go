package gateway

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/microsoft/go-mssqldb"
	"github.com/orchardctl/cli/constants"
	"github.com/orchardctl/cli/entity"
	"github.com/orchardctl/cli/errors"
	"github.com/orchardctl/cli/ui"
)

const (
	sqlServerDriver = "sqlserver"

	pingQuery           = "SELECT 1"
	listDatabasesQuery  = "SELECT name FROM sys.databases"
	productVersionQuery = "SELECT CAST(SERVERPROPERTY('ProductVersion') AS nvarchar(128))"

	// SQL Server 2000 only exposes locks through syslockinfo.
	legacyLockingSessionsQuery = `SELECT DISTINCT req_spid
FROM master.dbo.syslockinfo
WHERE rsc_type = 2 AND rsc_dbid = db_id(@databaseName)
AND req_spid > @threshold AND req_spid <> @@SPID`

	lockingSessionsQuery = `SELECT DISTINCT request_session_id
FROM master.sys.dm_tran_locks
WHERE resource_type = 'DATABASE' AND resource_database_id = db_id(@databaseName)
AND request_session_id > @threshold AND request_session_id <> @@SPID`
)

func openSqlServer(serverName string, credentials *entity.SqlCredentials) (*sqlx.DB, error) {
	return sqlx.Open(sqlServerDriver, SqlServerDSN(serverName, credentials))
}

// SqlServerDSN builds a go-mssqldb connection URL against the master database.
// serverName accepts the usual forms: host, host\instance, host,port and "."
// or "(local)" for the local machine. Without credentials the driver falls
// back to integrated authentication. Development servers usually run with a
// self-signed certificate, so it is trusted as is.
func SqlServerDSN(serverName string, credentials *entity.SqlCredentials) string {
	host, instance, port := splitServerName(serverName)
	u := &url.URL{
		Scheme: sqlServerDriver,
		Host:   host,
	}
	if port != "" {
		u.Host = host + ":" + port
	}
	if instance != "" {
		u.Path = instance
	}
	if credentials != nil {
		u.User = url.UserPassword(credentials.UserName, credentials.Password)
	}
	query := url.Values{}
	query.Set("database", "master")
	query.Set("app name", userAgentHeader)
	query.Set("trustservercertificate", "true")
	u.RawQuery = query.Encode()
	return u.String()
}

func splitServerName(serverName string) (host, instance, port string) {
	host = strings.TrimPrefix(strings.TrimSpace(serverName), "tcp:")
	if i := strings.LastIndex(host, ","); i >= 0 {
		host, port = host[:i], host[i+1:]
	}
	if i := strings.Index(host, `\`); i >= 0 {
		host, instance = host[:i], host[i+1:]
	}
	switch strings.ToLower(host) {
	case "", ".", "(local)", "localhost":
		host = "localhost"
	}
	return host, instance, port
}

// QuoteIdentifier brackets a SQL Server identifier.
func QuoteIdentifier(name string) string {
	return "[" + strings.ReplaceAll(name, "]", "]]") + "]"
}

// SessionQuery returns the locking-session query for a server major version.
func SessionQuery(majorVersion int) string {
	if majorVersion == 8 {
		return legacyLockingSessionsQuery
	}
	return lockingSessionsQuery
}

// TestServer reports whether the server answers a trivial query. It never fails.
func (g *Gateway) TestServer(ctx context.Context, db *sqlx.DB) bool {
	if err := db.PingContext(ctx); err != nil {
		return false
	}
	var result int
	if err := db.GetContext(ctx, &result, pingQuery); err != nil {
		return false
	}
	return result == 1
}

// ServerReachable opens a short-lived connection to serverName and tests it.
func (g *Gateway) ServerReachable(ctx context.Context, serverName string, credentials *entity.SqlCredentials) bool {
	db, err := g.openDB(serverName, credentials)
	if err != nil {
		return false
	}
	defer db.Close()
	return g.TestServer(ctx, db)
}

func (g *Gateway) DatabaseExists(ctx context.Context, db *sqlx.DB, name string) (bool, error) {
	if !g.TestServer(ctx, db) {
		return false, errors.New(errors.ConnectionError, "could not reach the SQL Server")
	}

	var names []string
	if err := db.SelectContext(ctx, &names, listDatabasesQuery); err != nil {
		return false, fmt.Errorf("list databases: %w", err)
	}
	for _, existing := range names {
		if strings.EqualFold(existing, name) {
			return true, nil
		}
	}
	return false, nil
}

func (g *Gateway) serverMajorVersion(ctx context.Context, db *sqlx.DB) (int, error) {
	var version string
	if err := db.GetContext(ctx, &version, productVersionQuery); err != nil {
		return 0, fmt.Errorf("read server version: %w", err)
	}
	major, err := strconv.Atoi(strings.SplitN(version, ".", 2)[0])
	if err != nil {
		return 0, fmt.Errorf("parse server version %q: %w", version, err)
	}
	return major, nil
}

// EvictSessions kills every user session holding a lock on the database.
func (g *Gateway) EvictSessions(ctx context.Context, db *sqlx.DB, name string) error {
	major, err := g.serverMajorVersion(ctx, db)
	if err != nil {
		return err
	}

	var sessions []int
	err = db.SelectContext(ctx, &sessions, SessionQuery(major),
		sql.Named("databaseName", name),
		sql.Named("threshold", constants.ReservedSessionThreshold))
	if err != nil {
		return fmt.Errorf("list sessions locking %s: %w", name, err)
	}

	for _, session := range sessions {
		ui.Debug("Killing session %d holding a lock on %s", session, name)
		// KILL does not accept parameters; session is an integer read from the server.
		if _, err := db.ExecContext(ctx, fmt.Sprintf("KILL %d", session)); err != nil {
			return fmt.Errorf("kill session %d: %w", session, err)
		}
	}
	return nil
}

// CreateDatabase creates name on serverName. An existing database is dropped
// first when opts.Force is set; otherwise it is left alone and false is returned.
func (g *Gateway) CreateDatabase(ctx context.Context, serverName, name string, opts entity.CreateDatabaseOptions) (bool, error) {
	target := fmt.Sprintf(`%s\%s`, serverName, name)

	db, err := g.openDB(serverName, opts.Credentials)
	if err != nil {
		return false, errors.Wrap(errors.ProvisioningError, err, `Could not create "%s"!`, target)
	}
	defer db.Close()

	exists, err := g.DatabaseExists(ctx, db, name)
	if errors.Is(err, errors.ConnectionError) {
		return false, err
	}
	if err != nil {
		return false, errors.Wrap(errors.ProvisioningError, err, `Could not create "%s"!`, target)
	}

	if exists {
		if !opts.Force {
			ui.Warn(`A database with the name "%s" already exists on the SQL Server at "%s". `+
				`Use --force to drop it and create a new database with that name.`, name, serverName)
			return false, nil
		}

		ui.Warn(`Dropping database "%s"!`, target)
		if err := g.EvictSessions(ctx, db, name); err != nil {
			return false, errors.Wrap(errors.ProvisioningError, err, `Could not drop "%s"!`, target)
		}
		if _, err := db.ExecContext(ctx, "DROP DATABASE "+QuoteIdentifier(name)); err != nil {
			return false, errors.Wrap(errors.ProvisioningError, err, `Could not drop "%s"!`, target)
		}
	}

	if _, err := db.ExecContext(ctx, "CREATE DATABASE "+QuoteIdentifier(name)); err != nil {
		return false, errors.Wrap(errors.ProvisioningError, err, `Could not create "%s"!`, target)
	}
	return true, nil
}
