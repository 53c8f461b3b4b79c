package socketlabs

// Config holds SocketLabs provider configuration.
type Config struct {
	ServerID    string `env:"SOCKETLABS_SERVER_ID,required"`
	APIKey      string `env:"SOCKETLABS_API_KEY,required"`
	SenderEmail string `env:"SOCKETLABS_FROM_EMAIL,required"`
	SenderName  string `env:"SOCKETLABS_FROM_NAME"`
}
