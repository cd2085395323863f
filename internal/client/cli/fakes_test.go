package cli

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/dmitrijs2005/creditscore/internal/client/config"
	"github.com/dmitrijs2005/creditscore/internal/client/models"
	"github.com/dmitrijs2005/creditscore/internal/client/viewstate"
	"github.com/dmitrijs2005/creditscore/internal/logging"
)

// fakeAuth implements services.AuthService for CLI tests.
type fakeAuth struct {
	state    viewstate.State
	identity string

	loginForm models.LoginForm
	loginErr  error

	regForm models.RegisterForm
	regErr  error

	logoutCalled bool
	logoutErr    error

	pingErr  error
	closeErr error
}

func (f *fakeAuth) Login(_ context.Context, form models.LoginForm) error {
	f.loginForm = form
	if f.loginErr != nil {
		return f.loginErr
	}
	f.state = viewstate.Authenticated
	return nil
}

func (f *fakeAuth) Register(_ context.Context, form models.RegisterForm) error {
	f.regForm = form
	return f.regErr
}

func (f *fakeAuth) Logout(context.Context) error {
	f.logoutCalled = true
	f.state = viewstate.Anonymous
	return f.logoutErr
}

func (f *fakeAuth) Identity(context.Context) (string, bool) {
	return f.identity, f.identity != ""
}

func (f *fakeAuth) State() viewstate.State {
	if f.state == "" {
		return viewstate.Anonymous
	}
	return f.state
}

func (f *fakeAuth) Ping(context.Context) error  { return f.pingErr }
func (f *fakeAuth) Close(context.Context) error { return f.closeErr }

// fakeApplications implements services.ApplicationService.
type fakeApplications struct {
	got *models.ApplicationForm
	ret *models.Evaluation
	err error
}

func (f *fakeApplications) Evaluate(_ context.Context, form models.ApplicationForm) (*models.Evaluation, error) {
	f.got = &form
	return f.ret, f.err
}

func newTestApp(t *testing.T, auth *fakeAuth, input string) (*App, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	cfg := &config.Config{}
	cfg.LoadDefaults()
	return &App{
		config:             cfg,
		authService:        auth,
		applicationService: &fakeApplications{},
		logger:             logging.Nop(),
		reader:             bufio.NewReader(strings.NewReader(input)),
		out:                &out,
	}, &out
}

func stubInputs(t *testing.T, username string, password []byte) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) { return username, nil }
	getPassword = func(_ io.Writer) ([]byte, error) { return password, nil }
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}

func silencePrintln(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}
