package usecasecontract

type IConfigProvider interface {
	GetAppBaseURL() string
	GetAdminEmail() string
	GetFacebookAppID() string
}
