package cmd

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	PushGatewayURL   string
	PushGatewayToken string
	SMSGatewayURL    string
	SMSGatewayToken  string
	SMSSenderName    string

	AdminRoleID      string
	SuperadminRoleID string

	NotifyMaxParallel string
	NotifySendTimeout string
}
