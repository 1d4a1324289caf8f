/*
 * © 2026 beyondverage0908
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
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"github.com/beyondverage0908/nanjin-common/application/config"
	"github.com/beyondverage0908/nanjin-common/application/di"
	er "github.com/beyondverage0908/nanjin-common/domain/observability/error_reporting"
	"github.com/beyondverage0908/nanjin-common/infrastructure/sentry"
)

const defaultReadyTimeout = 10 * time.Second

var (
	errNothingToReport = errors.New("nothing to report, use --title, --message or --feedback")
	errNotReady        = errors.New("error reporting did not become ready in time")
)

// loadFailure is implemented by reporters that can fail to load their sdk.
type loadFailure interface {
	Failed() <-chan struct{}
	LoadErr() error
}

type request struct {
	title        string
	message      string
	remark       string
	level        string
	fingerprint  []string
	tags         map[string]string
	userId       string
	feedback     bool
	presenter    string
	readyTimeout time.Duration
	showVersion  bool
}

func main() {
	c := config.CurrentConfig()
	req, output, err := parseFlags(os.Args, c)
	if err != nil {
		fmt.Println(err, output)
		os.Exit(1)
	}
	if req.showVersion {
		fmt.Println(config.Version)
		return
	}
	defer c.DisableLoggingToFile()

	if err = c.Validate(); err != nil {
		c.Logger().Error().Err(err).Str("method", "main").Msg("invalid configuration")
		os.Exit(1)
	}
	di.Init(newPresenter(req.presenter))

	eventId, err := run(context.Background(), c, req, di.ErrorReporter())
	if err != nil {
		c.Logger().Error().Err(err).Str("method", "main").Msg("reporting failed")
		os.Exit(1)
	}
	if eventId != "" {
		fmt.Println(eventId)
	}
}

// parseFlags loads the config sources and applies flags on top, flags win.
func parseFlags(args []string, c *config.Config) (*request, string, error) {
	flags := pflag.NewFlagSet(args[0], pflag.ContinueOnError)
	var buf bytes.Buffer
	flags.SetOutput(&buf)

	req := &request{}
	dsnFlag := flags.String("dsn", "", "sentry dsn of the project to report to")
	environmentFlag := flags.String("environment", "", "reporting environment <Dev|Test|Prod>")
	debugFlag := flags.Bool("debug", false, "enables sdk debug output")
	configFlag := flags.StringP("config", "c", "", "provide the full path of a YAML config file to use")
	logLevelFlag := flags.StringP("log-level", "l", "info", "sets the log-level to <trace|debug|info|warn|error|fatal>")
	logPathFlag := flags.StringP("log-path", "f", "", "sets the log file")
	userAgentFlag := flags.String("user-agent", "", "user agent of the host, legacy agents are not supported")
	flags.StringVarP(&req.title, "title", "t", "", "report an exception with this title")
	flags.StringVarP(&req.message, "message", "m", "", "report a message with this title")
	flags.StringVar(&req.remark, "remark", "", "extra information attached as remark")
	flags.StringVar(&req.level, "level", "", "severity <fatal|error|warning|info|debug>")
	flags.StringSliceVar(&req.fingerprint, "finger", nil, "fingerprint used for grouping, may be repeated")
	flags.StringToStringVar(&req.tags, "tag", nil, "scope tag as key=value, may be repeated")
	flags.StringVar(&req.userId, "user", "", "id of the user the report belongs to")
	flags.BoolVar(&req.feedback, "feedback", false, "show the user feedback dialog for the report")
	flags.StringVar(&req.presenter, "presenter", "log", "how to show the feedback dialog <log|browser|clipboard>")
	flags.DurationVar(&req.readyTimeout, "wait", defaultReadyTimeout, "how long to wait for the sdk to become ready")
	flags.BoolVarP(&req.showVersion, "version", "v", false, "prints the version")

	err := flags.Parse(args[1:])
	if err != nil {
		return nil, buf.String(), err
	}

	c.SetLogPath(*logPathFlag)
	c.ConfigureLogging(*logLevelFlag)
	c.SetConfigFile(*configFlag)
	if err = c.Load(); err != nil {
		return nil, buf.String(), err
	}

	if *dsnFlag != "" {
		c.SetDsn(*dsnFlag)
	}
	if *environmentFlag != "" {
		environment, parseErr := er.ParseEnvironment(*environmentFlag)
		if parseErr != nil {
			return nil, buf.String(), parseErr
		}
		c.SetEnvironment(environment)
	}
	if flags.Changed("debug") {
		c.SetDebug(*debugFlag)
	}
	if *userAgentFlag != "" {
		c.SetUserAgent(*userAgentFlag)
	}
	return req, buf.String(), nil
}

func newPresenter(kind string) sentry.Presenter {
	switch kind {
	case "browser":
		return sentry.NewBrowserPresenter()
	case "clipboard":
		return sentry.NewClipboardPresenter()
	default:
		return nil
	}
}

// run waits for the reporter to become ready and sends what req asks for.
// It returns the id of the event the feedback dialog or the report refers to.
func run(ctx context.Context, c *config.Config, req *request, reporter er.ErrorReporter) (string, error) {
	logger := c.Logger()
	if req.title == "" && req.message == "" && !req.feedback {
		return "", errNothingToReport
	}

	result := reporter.EnsureClient(ctx, c.Reporting(), func() {
		logger.Debug().Str("method", "run").Msg("error reporting ready")
	})
	switch result.Status {
	case er.StatusUnsupported, er.StatusLoadFailed, er.StatusInvalidInput:
		return "", result.Err
	}

	var failed <-chan struct{}
	failure, canFail := reporter.(loadFailure)
	if canFail {
		failed = failure.Failed()
	}
	select {
	case <-reporter.Ready():
	case <-failed:
		return "", errors.Wrap(failure.LoadErr(), "couldn't load error reporting sdk")
	case <-time.After(req.readyTimeout):
		if canFail && failure.LoadErr() != nil {
			return "", errors.Wrap(failure.LoadErr(), "couldn't load error reporting sdk")
		}
		return "", errNotReady
	case <-ctx.Done():
		return "", ctx.Err()
	}

	var user *er.User
	if req.userId != "" {
		user = &er.User{ID: req.userId}
	}
	if len(req.tags) > 0 || user != nil {
		tags := make([]er.Tag, 0, len(req.tags))
		for key, value := range req.tags {
			tags = append(tags, er.Tag{Key: key, Value: value})
		}
		reporter.EnrichScope(tags, user)
	}

	var remark any
	if req.remark != "" {
		remark = req.remark
	}

	eventId := ""
	if req.title != "" {
		result = reporter.ReportException(req.title, remark, er.ExceptionOptions{
			Fingerprint: req.fingerprint,
			Level:       er.Severity(req.level),
		})
		if !result.OK() {
			return "", errors.Wrap(resultErr(result), "couldn't report exception")
		}
		eventId = result.EventID
	}
	if req.message != "" {
		result = reporter.ReportMessage(er.MessageOptions{
			Title:       req.message,
			Extra:       remark,
			Level:       er.Severity(req.level),
			Fingerprint: req.fingerprint,
		})
		if !result.OK() {
			return "", errors.Wrap(resultErr(result), "couldn't report message")
		}
		eventId = result.EventID
	}
	if req.feedback {
		result = reporter.ShowFeedbackDialog(eventId)
		if !result.OK() {
			return "", errors.Wrap(resultErr(result), "couldn't show feedback dialog")
		}
		eventId = result.EventID
	}

	if !reporter.Flush(c.FlushTimeout()) {
		logger.Warn().Str("method", "run").Msg("not all events were delivered before the flush timeout")
	}
	return eventId, nil
}

func resultErr(result er.Result) error {
	if result.Err != nil {
		return result.Err
	}
	return errors.New(result.Status.String())
}
