package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	companyName = "Acme Corp"
	fiscalYear  = 2024

	outputDir  = "data"
	outputFile = "sample_financial_report.pdf"

	debugging = false // output DEBUG level logs
)

func main() {
	ctx := setupLogging()

	params := DefaultParams()
	flowables := buildReport(params)

	if err := renderReport(ctx, flowables, params.OutputPath); err != nil {
		zerolog.Ctx(ctx).Fatal().Err(err).Msg("failed to render report")
	}

	info, err := os.Stat(params.OutputPath)
	if err != nil {
		zerolog.Ctx(ctx).Fatal().Err(err).Msg("failed to stat report")
	}

	fmt.Printf("Sample financial report created: %s\n", params.OutputPath)
	fmt.Printf("File size: %.1f KB\n", float64(info.Size())/1024)

	zerolog.Ctx(ctx).Info().
		Str("path", params.OutputPath).
		Int64("bytes", info.Size()).
		Msg("report written")
}

func setupLogging() context.Context {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	// alter the caller() return to only include the last directory
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		parts := strings.Split(file, "/")
		if len(parts) > 1 {
			return strings.Join(parts[len(parts)-2:], "/") + ":" + strconv.Itoa(line)
		}
		return file + ":" + strconv.Itoa(line)
	}
	logTag := "finreport"
	if base := filepath.Base(os.Args[0]); base != "." && base != string(filepath.Separator) {
		logTag = base
	}
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if debugging {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	logger := log.With().Str("@tag", logTag).Caller().Logger()
	ctx := logger.WithContext(context.Background())

	return ctx
}
