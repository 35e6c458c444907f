// plat-survey CLI - preview, validate and send survey notifications
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"github.com/zeromicro/go-zero/core/conf"

	"github.com/joeblew999/plat-survey/internal/config"
	"github.com/joeblew999/plat-survey/internal/notify"
	"github.com/joeblew999/plat-survey/internal/record"
	"github.com/joeblew999/plat-survey/internal/survey"
	"github.com/joeblew999/plat-survey/pkg/mail"
	"github.com/joeblew999/plat-survey/pkg/mjml"
)

const version = "plat-survey v0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "render":
		renderCmd(os.Args[2:])
	case "row":
		rowCmd(os.Args[2:])
	case "validate":
		validateCmd(os.Args[2:])
	case "send":
		sendCmd(os.Args[2:])
	case "schema":
		schemaCmd(os.Args[2:])
	case "templates":
		templatesCmd(os.Args[2:])
	case "responses":
		responsesCmd(os.Args[2:])
	case "version":
		fmt.Println(version)
	case "help", "-h", "--help":
		printUsage()
	default:
		color.Red("Unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`plat-survey - Customer discovery survey CLI

Usage:
  plat-survey <command> [options]

Commands:
  render     Render the operator notification for a response
  row        Print the spreadsheet row for a response
  validate   Validate HTML for email client compatibility
  send       Send the notification for a response via Gmail SMTP
  schema     Print the survey questions for a role
  templates  List notification templates
  responses  Show recorded responses from the xlsx or sql sink
  version    Show version
  help       Show this help

Examples:
  plat-survey render -file=response.json -out=notification.html
  plat-survey row -file=response.json
  plat-survey validate -file=notification.html
  plat-survey send -file=response.json -to=hello@operantive.com
  plat-survey schema -role=owner
  plat-survey responses -f=etc/plat-survey.yaml -n=5

Without -file a sample owner response is used.

Environment Variables:
  GMAIL_USER          Gmail account used for sending
  GMAIL_APP_PASSWORD  Gmail app password for sending`)
}

func fail(format string, args ...any) {
	color.Red("Error: "+format, args...)
	os.Exit(1)
}

func renderCmd(args []string) {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	file := fs.String("file", "", "JSON response file")
	dir := fs.String("dir", "", "Template directory overriding the embedded templates")
	outFile := fs.String("out", "", "Output file (default: stdout)")
	debug := fs.Bool("debug", false, "Add MJML debug attributes to the HTML")
	fs.Parse(args)

	r, err := loadResponse(*file)
	if err != nil {
		fail("%v", err)
	}

	var opts []mjml.RendererOption
	if *debug {
		opts = append(opts, mjml.WithDebug(true))
	}
	out, err := renderNotification(*dir, r, time.Now(), opts...)
	if err != nil {
		fail("rendering notification: %v", err)
	}

	if *outFile == "" {
		fmt.Println(out.HTML)
	} else {
		if err := os.WriteFile(*outFile, []byte(out.HTML), 0644); err != nil {
			fail("writing output: %v", err)
		}
		color.Green("✓ Rendered %q to %s (%d bytes)", out.Subject, *outFile, len(out.HTML))
	}
	printIssues(os.Stderr, out.Issues)
}

func rowCmd(args []string) {
	fs := flag.NewFlagSet("row", flag.ExitOnError)
	file := fs.String("file", "", "JSON response file")
	fs.Parse(args)

	r, err := loadResponse(*file)
	if err != nil {
		fail("%v", err)
	}
	printRow(os.Stdout, survey.Row(r, time.Now()))
}

func validateCmd(args []string) {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	file := fs.String("file", "", "HTML file to validate")
	fs.Parse(args)

	if *file == "" {
		fail("-file is required")
	}

	content, err := os.ReadFile(*file)
	if err != nil {
		fail("reading file: %v", err)
	}

	issues := mail.CheckHTML(string(content))
	if len(issues) == 0 {
		color.Green("✓ %s - No compatibility issues found", *file)
		return
	}
	printIssues(os.Stdout, issues)
	os.Exit(1)
}

func printIssues(w io.Writer, issues []mail.Issue) {
	if len(issues) == 0 {
		return
	}
	color.New(color.FgYellow).Fprintf(w, "⚠ Found %d compatibility issue(s):\n", len(issues))
	for _, issue := range issues {
		fmt.Fprintf(w, "  • %s\n", issue)
	}
}

func sendCmd(args []string) {
	fs := flag.NewFlagSet("send", flag.ExitOnError)
	file := fs.String("file", "", "JSON response file")
	to := fs.String("to", "hello@operantive.com", "Recipient email address")
	dir := fs.String("dir", "", "Template directory overriding the embedded templates")
	fs.Parse(args)

	smtpCfg := mail.GmailConfig()
	if smtpCfg.Username == "" || smtpCfg.Password == "" {
		fail("GMAIL_USER and GMAIL_APP_PASSWORD environment variables required")
	}

	r, err := loadResponse(*file)
	if err != nil {
		fail("%v", err)
	}

	renderer, err := notify.NewRenderer(*dir)
	if err != nil {
		fail("loading templates: %v", err)
	}

	n := notify.New(renderer, mail.NewSMTPMailer(smtpCfg), *to)
	if err := n.Notify(context.Background(), r, time.Now()); err != nil {
		fail("sending notification: %v", err)
	}
	color.Green("✓ Notification sent to %s", *to)
}

func schemaCmd(args []string) {
	fs := flag.NewFlagSet("schema", flag.ExitOnError)
	role := fs.String("role", survey.RoleOwner, "Role: owner or employee")
	fs.Parse(args)

	printSchema(os.Stdout, *role)
}

func templatesCmd(args []string) {
	fs := flag.NewFlagSet("templates", flag.ExitOnError)
	dir := fs.String("dir", "", "Template directory overriding the embedded templates")
	fs.Parse(args)

	renderer, err := notify.NewRenderer(*dir)
	if err != nil {
		fail("loading templates: %v", err)
	}
	for _, name := range renderer.ListTemplates() {
		fmt.Printf("  • %s\n", name)
	}
}

func responsesCmd(args []string) {
	fs := flag.NewFlagSet("responses", flag.ExitOnError)
	configFile := fs.String("f", "etc/plat-survey.yaml", "Server config file")
	limit := fs.Int("n", 10, "Number of responses to show, newest first")
	fs.Parse(args)

	var c config.Config
	if err := conf.Load(*configFile, &c, conf.UseEnv()); err != nil {
		fail("loading config: %v", err)
	}

	ctx := context.Background()
	sink, err := record.Open(ctx, c.Sheets)
	if err != nil {
		fail("opening %s sink: %v", c.Sheets.Backend, err)
	}
	err = listResponses(ctx, os.Stdout, sink, *limit)
	sink.Close()
	if err != nil {
		fail("%v", err)
	}
}

func listResponses(ctx context.Context, w io.Writer, sink *record.Sink, limit int) error {
	reader, err := sink.Reader()
	if err != nil {
		return err
	}
	total, err := reader.Count(ctx)
	if err != nil {
		return err
	}
	rows, err := reader.Recent(ctx, limit)
	if err != nil {
		return err
	}

	color.New(color.Bold).Fprintf(w, "%d response(s) in the %s sink, showing %d\n", total, sink.Name, len(rows))
	for i, row := range rows {
		fmt.Fprintf(w, "\n#%d\n", i+1)
		printRow(w, row)
	}
	return nil
}

func loadResponse(file string) (survey.Response, error) {
	if file == "" {
		return sampleResponse(), nil
	}

	content, err := os.ReadFile(file)
	if err != nil {
		return survey.Response{}, fmt.Errorf("reading response file: %w", err)
	}

	var r survey.Response
	if err := json.Unmarshal(content, &r); err != nil {
		return survey.Response{}, fmt.Errorf("parsing %s: %w", file, err)
	}
	return r, nil
}

func renderNotification(dir string, r survey.Response, now time.Time, opts ...mjml.RendererOption) (notify.Rendered, error) {
	renderer, err := notify.NewRenderer(dir, opts...)
	if err != nil {
		return notify.Rendered{}, err
	}
	return notify.New(renderer, nil).Render(r, now)
}

// printRow lists row against the column names. Short rows print blanks.
func printRow(w io.Writer, row []string) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for i, col := range survey.Columns {
		var v string
		if i < len(row) {
			v = row[i]
		}
		fmt.Fprintf(tw, "%s\t%s\n", col, v)
	}
	tw.Flush()
}

func printSchema(w io.Writer, role string) {
	bold := color.New(color.Bold)
	for _, section := range survey.Sections(role) {
		bold.Fprintln(w, section.Title)
		for _, q := range section.Questions {
			line := fmt.Sprintf("  %-20s %-7s %s", q.Field, q.Kind, q.Prompt)
			if len(q.Options) > 0 {
				line += " [" + strings.Join(q.Options, ", ") + "]"
			}
			fmt.Fprintln(w, line)
		}
	}
}

func sampleResponse() survey.Response {
	return survey.Response{
		Name:                "Sample Owner",
		Email:               "owner@example.com",
		Phone:               "555-0100",
		Role:                survey.RoleOwner,
		Business:            "restaurant",
		Employees:           "6-10",
		TimeWasterExists:    survey.Yes,
		ProblemsHappen:      survey.Yes,
		ThingsFallThrough:   survey.No,
		CoordinationHard:    survey.Yes,
		WorriedAboutLegal:   survey.Yes,
		HadLegalIssue:       survey.No,
		HadLaborComplaint:   survey.No,
		UsesWhatsApp:        survey.Yes,
		HasLanguageBarriers: survey.Yes,
		WantsDocumentation:  survey.Yes,
		BiggestProblems:     survey.Tokens{"staff-scheduling", "communication"},
		InterestedInCall:    survey.Yes,
	}
}
