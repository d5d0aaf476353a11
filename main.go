package main

import (
	"os"

	"github.com/resumecoach/backend/cli"
)

// @title Resume Coach API
// @version 1.0
// @description AI resume coach: section extraction, job market trends, tailored feedback and document chat.

// @contact.name API Support

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the chat session token.

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
