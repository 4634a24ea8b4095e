// Package send implements the send subcommand.
package send

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tphakala/gonotify/internal/asset"
	"github.com/tphakala/gonotify/internal/conf"
	"github.com/tphakala/gonotify/internal/notify"
)

type options struct {
	urls     []string
	title    string
	typeName string
	format   string
	tags     []string
}

// Command creates the send subcommand.
func Command(settings *conf.Settings) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "send [body]",
		Short: "Send a notification to one or more target URLs",
		Long: "Sends a notification to every configured target URL. The body is taken\n" +
			"from the first argument, or from stdin when no argument is given.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return execute(cmd, args, settings, opts)
		},
	}

	cmd.Flags().StringArrayVarP(&opts.urls, "url", "u", nil, "Target URL (repeatable; defaults to the configured urls)")
	cmd.Flags().StringVarP(&opts.title, "title", "t", "", "Notification title")
	cmd.Flags().StringVar(&opts.typeName, "type", string(notify.TypeInfo), "Notification type: info, success, warning or failure")
	cmd.Flags().StringVar(&opts.format, "format", string(notify.FormatText), "Body format: text, html or markdown")
	cmd.Flags().StringArrayVar(&opts.tags, "tag", nil, "Deliver only to targets carrying these tags (repeatable; comma joins within a flag)")

	return cmd
}

func execute(cmd *cobra.Command, args []string, settings *conf.Settings, opts *options) error {
	body, err := readBody(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}
	if body == "" && opts.title == "" {
		return fmt.Errorf("nothing to send: body and title are both empty")
	}

	notifyType := notify.Type(strings.ToLower(opts.typeName))
	if !notifyType.Valid() {
		return fmt.Errorf("unsupported notification type %q", opts.typeName)
	}

	bodyFormat := notify.Format(strings.ToLower(opts.format))
	if !bodyFormat.Valid() {
		return fmt.Errorf("unsupported body format %q", opts.format)
	}

	urls := opts.urls
	if len(urls) == 0 {
		urls = settings.URLs
	}
	if len(urls) == 0 {
		return fmt.Errorf("no target URLs: pass --url or configure urls")
	}

	env := &notify.Env{
		AppID:  settings.AppID,
		Assets: asset.New(settings.Asset.Dir, settings.Asset.Theme, settings.Asset.CacheTTL),
	}

	hub := notify.NewHub(env)
	for _, entry := range urls {
		tags, target := splitTarget(entry)
		if !hub.Add([]string{target}, tags...) {
			return fmt.Errorf("target URL %q could not be loaded", target)
		}
	}

	ok := hub.Notify(cmd.Context(), &notify.Broadcast{
		Body:       body,
		Title:      opts.title,
		Type:       notifyType,
		BodyFormat: bodyFormat,
		Tags:       parseTags(opts.tags),
	})
	if !ok {
		return fmt.Errorf("one or more notifications failed")
	}
	return nil
}

// readBody takes the body from the argument, or from stdin when absent.
func readBody(stdin io.Reader, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if f, ok := stdin.(*os.File); ok {
		if info, err := f.Stat(); err == nil && info.Mode()&os.ModeCharDevice != 0 {
			// Interactive terminal with no piped input.
			return "", nil
		}
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read body from stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}

// splitTarget separates an optional comma-joined tag prefix from a
// target entry of the form "taga,tagb=scheme://...". A '=' appearing at
// or after the scheme separator belongs to the URL itself.
func splitTarget(entry string) (tags []string, target string) {
	eq := strings.Index(entry, "=")
	scheme := strings.Index(entry, "://")
	if eq <= 0 || (scheme >= 0 && eq > scheme) {
		return nil, entry
	}
	for tag := range strings.SplitSeq(entry[:eq], ",") {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags, entry[eq+1:]
}

// parseTags turns repeated --tag flags into the OR-of-AND-groups filter:
// each flag occurrence is one group, commas join tags within a group.
func parseTags(flags []string) [][]string {
	var groups [][]string
	for _, flag := range flags {
		var group []string
		for tag := range strings.SplitSeq(flag, ",") {
			tag = strings.TrimSpace(tag)
			if tag != "" {
				group = append(group, tag)
			}
		}
		if len(group) > 0 {
			groups = append(groups, group)
		}
	}
	return groups
}
