package entity

import (
	"fmt"
	"strings"
)

type DatabaseKind int

const (
	DatabaseNone DatabaseKind = iota
	DatabaseServer
)

func (k DatabaseKind) String() string {
	switch k {
	case DatabaseNone:
		return "None"
	case DatabaseServer:
		return "ServerBacked"
	default:
		return "Unknown"
	}
}

// DatabaseMode selects between the embedded provider and a SQL Server target.
// Server is set only when Kind is DatabaseServer.
type DatabaseMode struct {
	Kind   DatabaseKind
	Server *DatabaseTarget
}

type SqlCredentials struct {
	UserName string
	Password string
}

// DatabaseTarget describes the SQL Server database a run provisions.
// Credentials is nil when integrated security is used.
type DatabaseTarget struct {
	ServerName       string
	DatabaseName     string
	TablePrefix      string
	Credentials      *SqlCredentials
	Force            bool
	SuffixWithFolder bool
}

// NewCredentials returns SQL login credentials only when both parts are present.
func NewCredentials(userName, password string) *SqlCredentials {
	if userName == "" || password == "" {
		return nil
	}
	return &SqlCredentials{UserName: userName, Password: password}
}

// SecurityClause is the authentication part of an Orchard connection string.
func (t *DatabaseTarget) SecurityClause() string {
	if t.Credentials == nil {
		return "Integrated Security=True"
	}
	return fmt.Sprintf("User Id=%s;Password=%s", t.Credentials.UserName, t.Credentials.Password)
}

// ConnectionString is handed to Orchard during setup. MARS is required by Orchard.
func (t *DatabaseTarget) ConnectionString() string {
	return fmt.Sprintf("Server=%s;Database=%s;%s;MultipleActiveResultSets=True;",
		t.ServerName, t.DatabaseName, t.SecurityClause())
}

// MaskedConnectionString is ConnectionString with the password hidden.
func (t *DatabaseTarget) MaskedConnectionString() string {
	cs := t.ConnectionString()
	if t.Credentials == nil || t.Credentials.Password == "" {
		return cs
	}
	return strings.Replace(cs, "Password="+t.Credentials.Password, "Password=******", 1)
}

// QualifiedName renders the target the way SQL Server tooling does.
func (t *DatabaseTarget) QualifiedName() string {
	return fmt.Sprintf(`%s\%s`, t.ServerName, t.DatabaseName)
}

type CreateDatabaseOptions struct {
	Force       bool
	Credentials *SqlCredentials
}
