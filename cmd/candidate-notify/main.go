package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/mikey/resume-screener/internal/adapters/smtpnotify"
	"github.com/mikey/resume-screener/internal/config"
	"github.com/mikey/resume-screener/internal/core"
	"github.com/mikey/resume-screener/internal/logging"
	"go.uber.org/zap"
)

var (
	to                 = flag.String("to", "", "Candidate email address")
	name               = flag.String("name", "", "Candidate name used in the email body")
	decision           = flag.String("decision", "", "Decision to deliver (accept or reject)")
	jobDescription     = flag.String("job-description", "", "Job description text, used to infer the position title")
	jobDescriptionFile = flag.String("job-description-file", "", "Path to a file containing the job description (overrides -job-description)")
	verbose            = flag.Bool("verbose", false, "Enable verbose logging")
	jsonLog            = flag.Bool("json-log", false, "Output logs in JSON format")
)

func main() {
	flag.Parse()

	// Initialize logger
	logger, err := logging.InitConsoleLogger(*verbose, *jsonLog)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if *to == "" || *name == "" {
		logger.Fatal("Both -to and -name are required")
	}
	if *decision != "accept" && *decision != "reject" {
		logger.Fatal("Decision must be 'accept' or 'reject'", zap.String("decision", *decision))
	}

	cfg, err := config.New()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	jd := *jobDescription
	if *jobDescriptionFile != "" {
		data, err := os.ReadFile(*jobDescriptionFile)
		if err != nil {
			logger.Fatal("Failed to read job description file", zap.Error(err))
		}
		jd = string(data)
	}
	jobTitle := core.InferJobTitle(jd)

	var subject, body string
	if *decision == "accept" {
		subject, body = core.AcceptanceEmail(*name, jobTitle)
	} else {
		subject, body = core.RejectionEmail(*name, jobTitle)
	}

	smtpCfg := cfg.GetSMTP()
	notifier := smtpnotify.NewNotifier(
		smtpCfg.Address,
		smtpCfg.From,
		smtpCfg.Username,
		smtpCfg.Password,
		logger,
	)

	if err := notifier.Send(context.Background(), *to, subject, body); err != nil {
		logger.Fatal("Failed to send decision email", zap.Error(err))
	}

	logger.Info("Decision email sent",
		zap.String("to", *to),
		zap.String("decision", *decision),
		zap.String("job_title", jobTitle))
}
