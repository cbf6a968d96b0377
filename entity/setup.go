package entity

// SetupPayload is the body of the tenant setup request.
type SetupPayload struct {
	SiteName         string `json:"SiteName"`
	DatabaseProvider string `json:"DatabaseProvider"`
	TablePrefix      string `json:"TablePrefix"`
	ConnectionString string `json:"ConnectionString"`
	RecipeName       string `json:"RecipeName"`
	UserName         string `json:"UserName"`
	Password         string `json:"Password"`
	Email            string `json:"Email"`
	TenantName       string `json:"Name"`
}
