package generalutils

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"regexp"
	"syscall"
	"time"

	"github.com/tatran0195/akaw/internal/apperr"
	"github.com/tatran0195/akaw/models"

	"github.com/cockroachdb/errors"
)

// DisplayTimeLayout is the fixed timestamp layout used for logs and for
// expiration times shown to the user. Times are converted to UTC first.
const DisplayTimeLayout = "2006-01-02 15:04:05 UTC"

type GeneralUtilsInterface interface {
	CheckAWSCLI() error
	HandleSignals() context.Context
	PrintConnectSummary(w io.Writer, result *models.ConnectResult)
}

type DefaultGeneralUtilsManager struct {
	CLIPath  string
	lookPath func(string) (string, error)
}

func NewGeneralUtilsManager(cliPath string) GeneralUtilsInterface {
	if cliPath == "" {
		cliPath = "aws"
	}
	return &DefaultGeneralUtilsManager{CLIPath: cliPath, lookPath: exec.LookPath}
}

func (d *DefaultGeneralUtilsManager) CheckAWSCLI() error {
	lookPath := d.lookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	name := d.CLIPath
	if name == "" {
		name = "aws"
	}
	if _, err := lookPath(name); err != nil {
		return errors.Mark(errors.Wrapf(err, "AWS CLI not found"), apperr.ErrAWSCLIMissing)
	}
	return nil
}

func (d *DefaultGeneralUtilsManager) HandleSignals() context.Context {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		fmt.Printf("Received termination signal: %v\n", sig)
		cancel()
	}()

	return ctx
}

func (d *DefaultGeneralUtilsManager) PrintConnectSummary(w io.Writer, result *models.ConnectResult) {
	source := "new session token"
	if result.UsingCached {
		source = "cached session token"
	}
	fmt.Fprintf(w, `
AWS Tunnel Details:
---------------------------------
Profile      : %s
Target       : %s
Local Port   : %d
Remote Port  : %d
Document     : %s
Credentials  : %s
Expiration   : %s
PID          : %d
---------------------------------
`, result.Profile, result.Config.Target, result.Config.LocalPort, result.Config.RemotePort,
		result.Config.DocumentName, source, FormatTime(result.Expiration), result.Session.PID)
}

// FormatTime renders t in DisplayTimeLayout.
func FormatTime(t time.Time) string {
	return t.UTC().Format(DisplayTimeLayout)
}

var regionFormat = regexp.MustCompile(`^[a-z]{2}(-gov)?-[a-z]+-\d+$`)

// IsValidRegionFormat matches patterns like us-east-1, ap-southeast-2.
func IsValidRegionFormat(region string) bool {
	return regionFormat.MatchString(region)
}
