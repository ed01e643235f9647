package client

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-rest-facade/internal/adapter"
	"github.com/MKhiriev/go-rest-facade/internal/optional"
	"github.com/MKhiriev/go-rest-facade/internal/service"
	"github.com/MKhiriev/go-rest-facade/internal/utils"
	"github.com/MKhiriev/go-rest-facade/models"
)

type command struct {
	name string
	args string
	help string
	run  func(ctx context.Context, a *App, args []string, p printer) error
}

var commandList []command

func init() {
	commandList = []command{
		{"echo", "[message]", "call /hello/echo/<message>", runEcho},
		{"watch", "[-interval 30s] [-count n]", "ping the backend until interrupted", runWatch},
		{"login", "<username> <password>", "log in and store the returned token", runLogin},
		{"register", "<phone> <password> [code]", "register a new account", runRegister},
		{"me", "", "show the current user", runMe},
		{"logout", "", "log out and forget the token", runLogout},
		{"points", "[limit] [page]", "show points history", runPoints},
		{"feedback", "<text...>", "submit feedback", runFeedback},
		{"feedback-unread", "[-from t] [-to t] [-read] [-limit n] [-page n]", "list unread feedback", runFeedbackUnread},
		{"feedback-user", "<user-id> [-read] [-limit n] [-page n]", "list feedback of a user", runFeedbackUser},
		{"feedback-mark", "<id>", "mark feedback as read", runFeedbackMark},
		{"get", "<path>", "GET an arbitrary path", runGet},
		{"post", "<path> [json]", "POST an arbitrary path", runPost},
		{"token", "show|set <token>|clear|inspect", "manage the stored credential", runToken},
		{"base", "show|set <url>", "show or change the backend base URL", runBase},
		{"path", "<base> [first] [-from t] [-to t] [-read] [-limit n] [-page n]", "build a REST path", runPath},
	}
}

func findCommand(name string) (command, bool) {
	for _, c := range commandList {
		if c.name == name {
			return c, true
		}
	}
	return command{}, false
}

// Run implements [Client]. JSON results go to out and status lines to
// stderr. A result that is not OK yields [ErrCommandFailed].
func (a *App) Run(ctx context.Context, args []string, out io.Writer) error {
	status := a.status
	if status == nil {
		status = os.Stderr
	}
	p := printer{out: out, status: status}

	if len(args) == 0 {
		printUsage(status)
		return fmt.Errorf("%w: no command given", ErrUsage)
	}
	if args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		printUsage(out)
		return nil
	}

	cmd, ok := findCommand(args[0])
	if !ok {
		printUsage(status)
		return fmt.Errorf("%w: unknown command %q", ErrUsage, args[0])
	}

	a.logger.Debug().Str("command", cmd.name).Msg("running command")
	return cmd.run(ctx, a, args[1:], p)
}

func runEcho(ctx context.Context, a *App, args []string, p printer) error {
	msg := strings.Join(args, " ")
	return printResult(p, "echo", service.Safe(ctx, a.logger, func(ctx context.Context) (models.Payload, error) {
		return a.services.EchoService.Echo(ctx, msg)
	}))
}

func runWatch(ctx context.Context, a *App, args []string, p printer) error {
	fs := newFlagSet("watch")
	interval := fs.Duration("interval", 0, "ping interval")
	count := fs.Int("count", 0, "stop after n pings; 0 runs until interrupted")
	if _, err := parseArgs(fs, args); err != nil {
		return err
	}

	watchCtx, cancel := context.WithCancel(ctx)
	results := make(chan models.Result[models.Payload])

	job := a.services.PingJob
	job.Start(watchCtx, *interval, func(res models.Result[models.Payload]) {
		select {
		case results <- res:
		case <-watchCtx.Done():
		}
	})
	defer job.Stop()
	defer cancel()

	for n := 0; *count <= 0 || n < *count; n++ {
		select {
		case <-ctx.Done():
			return nil
		case res := <-results:
			// a failed ping is reported and the watch goes on
			_ = printResult(p, "ping "+time.Now().Format(time.TimeOnly), res)
		}
	}
	return nil
}

func runLogin(ctx context.Context, a *App, args []string, p printer) error {
	if len(args) < 2 {
		return usageError("login")
	}
	form := models.LoginForm{Username: args[0], Password: args[1]}
	return printResult(p, "login", service.Safe(ctx, a.logger, func(ctx context.Context) (models.Payload, error) {
		return a.services.AuthService.Login(ctx, form)
	}))
}

func runRegister(ctx context.Context, a *App, args []string, p printer) error {
	if len(args) < 2 {
		return usageError("register")
	}
	form := models.RegisterForm{Phone: args[0], Password: args[1]}
	if len(args) > 2 {
		form.Code = args[2]
	}
	return printResult(p, "register", service.Safe(ctx, a.logger, func(ctx context.Context) (models.Payload, error) {
		return a.services.AuthService.Register(ctx, form)
	}))
}

func runMe(ctx context.Context, a *App, _ []string, p printer) error {
	return printResult(p, "me", service.Safe(ctx, a.logger, a.services.AuthService.Me))
}

func runLogout(ctx context.Context, a *App, _ []string, p printer) error {
	return printResult(p, "logout", service.Safe(ctx, a.logger, a.services.AuthService.Logout))
}

func runPoints(ctx context.Context, a *App, args []string, p printer) error {
	limit, page := utils.DefaultLimit, utils.DefaultPage
	if len(args) > 0 {
		limit = utils.ClampInt(args[0], 1, utils.DefaultLimit)
	}
	if len(args) > 1 {
		page = utils.ClampInt(args[1], 1, utils.DefaultPage)
	}
	return printResult(p, "points", service.Safe(ctx, a.logger, func(ctx context.Context) (models.Payload, error) {
		return a.services.AuthService.PointsHistory(ctx, limit, page)
	}))
}

func runFeedback(ctx context.Context, a *App, args []string, p printer) error {
	text := strings.Join(args, " ")
	return printResult(p, "feedback", service.Safe(ctx, a.logger, func(ctx context.Context) (models.Payload, error) {
		return a.services.FeedbackService.Submit(ctx, text)
	}))
}

func runFeedbackUnread(ctx context.Context, a *App, args []string, p printer) error {
	fs := newFlagSet("feedback-unread")
	flags := bindPathQuery(fs)
	if _, err := parseArgs(fs, args); err != nil {
		return err
	}
	q := flags.query(fs)
	return printResult(p, "feedback-unread", service.Safe(ctx, a.logger, func(ctx context.Context) (models.Payload, error) {
		return a.services.FeedbackService.NotRead(ctx, q)
	}))
}

func runFeedbackUser(ctx context.Context, a *App, args []string, p printer) error {
	fs := newFlagSet("feedback-user")
	read := fs.Bool("read", false, "list read feedback")
	limit := fs.String("limit", "", "page size")
	page := fs.String("page", "", "page number")
	positional, err := parseArgs(fs, args)
	if err != nil {
		return err
	}
	if len(positional) < 1 {
		return usageError("feedback-user")
	}

	userID := positional[0]
	l := utils.ClampInt(*limit, 1, utils.DefaultLimit)
	pg := utils.ClampInt(*page, 1, utils.DefaultPage)
	return printResult(p, "feedback-user", service.Safe(ctx, a.logger, func(ctx context.Context) (models.Payload, error) {
		return a.services.FeedbackService.ByUser(ctx, userID, *read, l, pg)
	}))
}

func runFeedbackMark(ctx context.Context, a *App, args []string, p printer) error {
	if len(args) < 1 {
		return usageError("feedback-mark")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("%w: feedback id must be an integer", ErrUsage)
	}
	return printResult(p, "feedback-mark", service.Safe(ctx, a.logger, func(ctx context.Context) (models.Payload, error) {
		return a.services.FeedbackService.MarkRead(ctx, id)
	}))
}

func runGet(ctx context.Context, a *App, args []string, p printer) error {
	if len(args) < 1 {
		return usageError("get")
	}
	return printResult(p, "get", service.Safe(ctx, a.logger, func(ctx context.Context) (models.Payload, error) {
		return a.Request(ctx, args[0], adapter.RequestOptions{Method: http.MethodGet})
	}))
}

func runPost(ctx context.Context, a *App, args []string, p printer) error {
	if len(args) < 1 {
		return usageError("post")
	}

	var data any
	if len(args) > 1 {
		dec := json.NewDecoder(strings.NewReader(args[1]))
		dec.UseNumber()
		if err := dec.Decode(&data); err != nil {
			return fmt.Errorf("%w: body is not valid JSON: %v", ErrUsage, err)
		}
	}
	return printResult(p, "post", service.Safe(ctx, a.logger, func(ctx context.Context) (models.Payload, error) {
		return a.Request(ctx, args[0], adapter.RequestOptions{Method: http.MethodPost, Data: data})
	}))
}

func runToken(ctx context.Context, a *App, args []string, p printer) error {
	sub := "show"
	if len(args) > 0 {
		sub = args[0]
	}

	switch sub {
	case "show":
		return printResult(p, "token", models.Result[string]{OK: true, Res: a.Token()})
	case "set":
		if len(args) < 2 {
			return usageError("token")
		}
		a.SetToken(args[1])
		return printResult(p, "token set", models.Result[string]{OK: true, Res: a.Token()})
	case "clear":
		a.ClearToken()
		return printResult(p, "token clear", models.Result[string]{OK: true})
	case "inspect":
		return printResult(p, "token inspect", service.Safe(ctx, a.logger, func(context.Context) (models.TokenInfo, error) {
			return a.InspectToken()
		}))
	default:
		return usageError("token")
	}
}

func runBase(ctx context.Context, a *App, args []string, p printer) error {
	sub := "show"
	if len(args) > 0 {
		sub = args[0]
	}

	switch sub {
	case "show":
		return printResult(p, "base", models.Result[string]{OK: true, Res: a.BaseURL()})
	case "set":
		if len(args) < 2 {
			return usageError("base")
		}
		return printResult(p, "base set", service.Safe(ctx, a.logger, func(context.Context) (string, error) {
			if err := a.SetBaseURL(args[1]); err != nil {
				return "", err
			}
			return a.BaseURL(), nil
		}))
	default:
		return usageError("base")
	}
}

func runPath(_ context.Context, _ *App, args []string, p printer) error {
	fs := newFlagSet("path")
	flags := bindPathQuery(fs)
	positional, err := parseArgs(fs, args)
	if err != nil {
		return err
	}
	if len(positional) < 1 {
		return usageError("path")
	}

	first := ""
	if len(positional) > 1 {
		first = positional[1]
	}
	path := utils.BuildPath(positional[0], first, flags.query(fs))
	return printResult(p, "path", models.Result[string]{OK: true, Res: path})
}

// pathQueryFlags holds the raw flag values of a [utils.PathQuery]. Only
// flags given on the command line become segments.
type pathQueryFlags struct {
	from, to    string
	read        bool
	limit, page string
}

func bindPathQuery(fs *flag.FlagSet) *pathQueryFlags {
	f := &pathQueryFlags{}
	fs.StringVar(&f.from, "from", "", "start time, RFC 3339 or 2006-01-02_15:04:05")
	fs.StringVar(&f.to, "to", "", "end time; empty means now")
	fs.BoolVar(&f.read, "read", false, "read flag segment")
	fs.StringVar(&f.limit, "limit", "", "page size")
	fs.StringVar(&f.page, "page", "", "page number")
	return f
}

func (f *pathQueryFlags) query(fs *flag.FlagSet) utils.PathQuery {
	var q utils.PathQuery
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "from":
			q.TimeFrom = optional.Some(utils.ParseTimeOr(f.from, time.Time{}))
		case "to":
			q.TimeTo = optional.Some(utils.ParseTimeOr(f.to, time.Time{}))
		case "read":
			q.Read = optional.Some(f.read)
		case "limit":
			q.Limit = optional.Some(utils.ClampInt(f.limit, 1, utils.DefaultLimit))
		case "page":
			q.Page = optional.Some(utils.ClampInt(f.page, 1, utils.DefaultPage))
		}
	})
	return q
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// parseArgs accepts positional arguments before, after or between flags
// and returns them in order.
func parseArgs(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrUsage, fs.Name(), err)
		}
		args = fs.Args()
		if len(args) == 0 {
			return positional, nil
		}
		positional = append(positional, args[0])
		args = args[1:]
	}
}

func usageError(name string) error {
	c, _ := findCommand(name)
	return fmt.Errorf("%w: %s %s", ErrUsage, c.name, c.args)
}
