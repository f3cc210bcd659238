package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MatheusHenriqueCIN/lovefi/internal/client"
	"github.com/MatheusHenriqueCIN/lovefi/internal/console"
)

func newMoodCommand(server *string) *cobra.Command {
	return &cobra.Command{
		Use:   "mood <texto>",
		Short: "Search lo-fi music for a mood description",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := console.New(client.New(*server, nil))
			c.SetMoodText(strings.Join(args, " "))
			c.Submit(cmd.Context())
			return printCarousel(cmd, c)
		},
	}
}

func newSurpriseCommand(server *string) *cobra.Command {
	return &cobra.Command{
		Use:   "surprise",
		Short: "Let the model invent a mood and search for it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := console.New(client.New(*server, nil))
			c.Surprise(cmd.Context())
			return printCarousel(cmd, c)
		},
	}
}

func printCarousel(cmd *cobra.Command, c *console.Console) error {
	if c.Phase() == console.PhaseFailed {
		return errors.New(c.ErrMessage())
	}

	out := cmd.OutOrStdout()
	videos := c.Videos()
	if len(videos) == 0 {
		fmt.Fprintln(out, "Nenhum resultado.")
		return nil
	}

	rows := make([][]string, 0, len(videos))
	for i, v := range videos {
		marker := ""
		if i == c.Cursor() {
			marker = "▶"
		}
		rows = append(rows, []string{marker, strconv.Itoa(i + 1), v.Title, v.URL})
	}

	fmt.Fprintln(out, renderTable([]string{"", "#", "Título", "Link"}, rows))
	return nil
}
