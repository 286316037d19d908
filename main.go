/*
 * © 2026 Snyk Limited All rights reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/snyk/release-fetch/application/config"
	"github.com/snyk/release-fetch/application/entrypoint"
	"github.com/snyk/release-fetch/internal/constants"
)

type cliOptions struct {
	entrypoint.Options
	version bool
}

func main() {
	defer entrypoint.OnPanicRecover()

	c := config.CurrentConfig()
	opts, output, err := parseFlags(os.Args, c)
	if err != nil {
		fmt.Fprintln(os.Stderr, err, output)
		os.Exit(1)
	}
	if opts.version {
		fmt.Println(config.Version)
		return
	}
	log.Info().Str("version", config.Version).Msg("release-fetch")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = entrypoint.Run(ctx, c, opts.Options, os.Stdout)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func parseFlags(args []string, c *config.Config) (*cliOptions, string, error) {
	flags := flag.NewFlagSet(args[0], flag.ContinueOnError)
	var buf bytes.Buffer
	flags.SetOutput(&buf)

	releaseFlag := flags.String("release", constants.DEFAULT_RELEASE, "name of the release to download from")
	filenameFlag := flags.String("filename", "", "name of the file to download. Downloads all files of the release if empty")
	destinationFlag := flags.String(
		"destination",
		constants.DEFAULT_DESTINATION,
		"directory or file path to save to. A path whose last element contains a \".\" is a file")
	listFlag := flags.Bool("list", false, "lists the releases of the repository instead of downloading")
	formatFlag := flags.String(
		"o",
		config.FormatJson,
		"sets the output format of -list. Accepted values \""+config.FormatJson+"\" and \""+config.FormatYaml+"\"")
	repoFlag := flags.String("repo", "", "repository as owner/name (default \""+constants.DEFAULT_REPOSITORY+"\")")
	logLevelFlag := flags.String("l", "info", "sets the log-level to <trace|debug|info|warn|error|fatal>")
	logPathFlag := flags.String("logPath", "", "sets the log file, logs go to stderr if empty")
	configFlag := flags.String(
		"c",
		"",
		"provide the full path of a config file to use. Format VARIABLENAME=VARIABLEVALUE")
	reportErrorsFlag := flags.Bool(
		"reportErrors",
		false,
		"enables error reporting")
	versionFlag := flags.Bool("v", false, "prints the version")

	err := flags.Parse(args[1:])
	if err != nil {
		return nil, buf.String(), err
	}
	if flags.NArg() > 0 {
		flags.Usage()
		return nil, buf.String(), errors.Errorf("unexpected arguments %v", flags.Args())
	}

	c.SetLogPath(*logPathFlag)
	c.ConfigureLogging(*logLevelFlag)
	c.SetConfigFile(*configFlag)
	c.Load()
	c.SetErrorReportingEnabled(*reportErrorsFlag)
	if *repoFlag != "" {
		if err = c.SetRepository(*repoFlag); err != nil {
			return nil, buf.String(), err
		}
	}
	if err = c.SetFormat(*formatFlag); err != nil {
		return nil, buf.String(), err
	}

	return &cliOptions{
		Options: entrypoint.Options{
			Release:     *releaseFlag,
			Filename:    *filenameFlag,
			Destination: *destinationFlag,
			List:        *listFlag,
		},
		version: *versionFlag,
	}, buf.String(), nil
}
