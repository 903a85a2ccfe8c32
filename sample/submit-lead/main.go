package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/xavierca1/alpha-site/internal/contactform"
	"github.com/xavierca1/alpha-site/pkg/logging"
)

func main() {
	godotenv.Load()
	logger := logging.New("info")

	baseURL := os.Getenv("API_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	form := contactform.New()
	flag.StringVar(&baseURL, "api", baseURL, "base URL of the running API")
	flag.StringVar(&form.Fields.Name, "name", "Test Lead", "full name")
	flag.StringVar(&form.Fields.Email, "email", "test.lead@example.com", "email address")
	flag.StringVar(&form.Fields.Phone, "phone", "", "phone number")
	flag.StringVar(&form.Fields.Company, "company", "", "company")
	flag.StringVar(&form.Fields.ServiceInterest, "service", "one-pager", "service of interest")
	flag.StringVar(&form.Fields.ProjectDetails, "details", "Sent from the submit-lead sample", "project details")
	flag.StringVar(&form.Fields.Budget, "budget", "under-500", "budget range value")
	flag.StringVar(&form.Fields.Timeline, "timeline", "", "timeline")
	flag.StringVar(&form.Fields.Currency, "currency", "USD", "currency code")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	logger.Info("submitting lead", "api", baseURL, "email", form.Fields.Email)
	if err := form.Submit(ctx, contactform.NewHTTPSubmitter(baseURL, 20*time.Second)); err != nil {
		logger.Error("submission failed", "status", form.Status, "error", err)
		os.Exit(1)
	}

	fmt.Printf("Lead submitted (status: %s)\n", form.Status)
}
