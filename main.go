package main

import (
	"os"

	"github.com/RobsonDevCode/reactscan/cmd"
	cache "github.com/RobsonDevCode/reactscan/internal/caching"
	"github.com/RobsonDevCode/reactscan/internal/configuration"
	scanner "github.com/RobsonDevCode/reactscan/internal/scanner"
	projectreaderservice "github.com/RobsonDevCode/reactscan/internal/services/projectReaderService"
	scanreportservice "github.com/RobsonDevCode/reactscan/internal/services/scanReportService"
	versionresolverservice "github.com/RobsonDevCode/reactscan/internal/services/versionResolverService"
	vulnerabilityevaluatorservice "github.com/RobsonDevCode/reactscan/internal/services/vulnerabilityEvaluatorService"
	commandrunner "github.com/RobsonDevCode/reactscan/internal/thirdPartyCommands/commandRunner"
	nextcommands "github.com/RobsonDevCode/reactscan/internal/thirdPartyCommands/nextCommands"
	npmcommands "github.com/RobsonDevCode/reactscan/internal/thirdPartyCommands/npmCommands"
)

func main() {
	cmd.SetScanReportFactory(newScanReport)
	cmd.Execute()
}

func newScanReport(config *configuration.Config) scanreportservice.ScanReportService {
	cacheInstance := cache.Cache{}
	commandRunner := commandrunner.NewBreakerRunner(
		commandrunner.NewExecRunner(config.CommandSettings.Timeout),
		config.CommandSettings.FailureThreshold)

	npmExecutor := npmcommands.NewNpmCommandExecutor(commandRunner, config.CommandSettings.Npm)
	nextExecutor := nextcommands.NewNextCommandExecutor(commandRunner, config.CommandSettings.Next)
	projectReader := projectreaderservice.NewProjectReader(&cacheInstance)

	resolver := versionresolverservice.NewVersionResolver(projectReader, npmExecutor, nextExecutor)
	evaluator := vulnerabilityevaluatorservice.NewVulnerabilityEvaluator()
	scanner := scanner.NewScanner(resolver, evaluator)

	return scanreportservice.NewScanReport(scanner, os.Stdout)
}
