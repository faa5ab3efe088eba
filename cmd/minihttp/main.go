package main

import (
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	minihttp "github.com/frankli0324/go-minihttp"
)

func main() {
	app := &cli.App{
		Name:      path.Base(os.Args[0]),
		Usage:     "fetch a URL over http(s), optionally through a proxy",
		ArgsUsage: "<url>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "request",
				Aliases: []string{"X"},
				Value:   "GET",
				Usage:   "request `METHOD`",
			},
			&cli.StringSliceFlag{
				Name:    "header",
				Aliases: []string{"H"},
				Usage:   "extra header as `'NAME: VALUE'`, repeatable, sent in order",
			},
			&cli.StringFlag{
				Name:    "data",
				Aliases: []string{"d"},
				Usage:   "request `BODY`",
			},
			&cli.StringFlag{
				Name:    "proxy",
				Aliases: []string{"x"},
				Usage:   "proxy `URL` (http for forwarding, https for CONNECT tunneling)",
			},
			&cli.BoolFlag{
				Name:    "insecure",
				Aliases: []string{"k"},
				Usage:   "skip certificate verification (https targets only)",
			},
			&cli.BoolFlag{
				Name:    "include",
				Aliases: []string{"i"},
				Usage:   "print the status line and headers before the body",
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Value: minihttp.DefaultTimeout,
				Usage: "socket read/write timeout",
			},
		},
		Action: fetch,
	}

	if err := app.Run(os.Args); err != nil {
		logrus.Fatal(err)
	}
}

func fetch(c *cli.Context) error {
	if c.NArg() != 1 {
		cli.ShowAppHelpAndExit(c, 2)
	}

	req, err := minihttp.New(c.Args().First())
	if err != nil {
		return err
	}
	req.SetMethod(minihttp.CustomMethod(strings.ToUpper(c.String("request"))))
	req.SetTimeout(c.Duration("timeout"))

	if raw := c.StringSlice("header"); len(raw) > 0 {
		headers := make([]minihttp.Header, 0, len(raw))
		for _, h := range raw {
			name, value, ok := strings.Cut(h, ":")
			if !ok {
				return errors.Errorf("malformed header %q, want 'NAME: VALUE'", h)
			}
			headers = append(headers, minihttp.Header{
				Name:  strings.TrimSpace(name),
				Value: strings.TrimSpace(value),
			})
		}
		req.SetHeaders(headers)
	}
	if body := c.String("data"); body != "" {
		req.SetBodyString(body)
	}
	if proxy := c.String("proxy"); proxy != "" {
		if err := req.SetProxy(proxy); err != nil {
			return err
		}
	}
	if c.Bool("insecure") {
		if err := req.SetVerify(false); err != nil {
			return err
		}
	}

	resp, err := minihttp.Do(c.Context, req)
	if err != nil {
		return err
	}
	if c.Bool("include") {
		fmt.Printf("%s %d %s\n", resp.Proto, resp.StatusCode, resp.Reason)
		for _, h := range resp.Headers {
			fmt.Printf("%s: %s\n", h.Name, h.Value)
		}
		fmt.Println()
	}
	fmt.Print(resp.Text())
	return nil
}
