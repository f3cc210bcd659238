package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/MatheusHenriqueCIN/lovefi/internal/client"
	"github.com/MatheusHenriqueCIN/lovefi/internal/radio"
)

func newRadioCommand(server *string) *cobra.Command {
	return &cobra.Command{
		Use:   "radio",
		Short: "List the live lo-fi radio streams",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			w := radio.NewWidget(client.New(*server, nil), terminalPlayer{out: out})
			w.Mount(cmd.Context())

			streams := w.Streams()
			if len(streams) == 0 {
				fmt.Fprintln(out, "Nenhuma rádio no ar.")
				return nil
			}

			rows := make([][]string, 0, len(streams))
			for i, s := range streams {
				marker := ""
				if cur, ok := w.Current(); ok && cur.ID == s.ID {
					marker = "▶"
				}
				rows = append(rows, []string{marker, strconv.Itoa(i + 1), s.Title, s.ID})
			}

			fmt.Fprintln(out, renderTable([]string{"", "#", "Rádio", "Stream"}, rows))
			return nil
		},
	}
}

// terminalPlayer satisfies radio.Player for one-shot CLI runs, echoing the
// commands a browser embed would receive.
type terminalPlayer struct {
	out io.Writer
}

func (p terminalPlayer) Load(id string) {
	fmt.Fprintf(p.out, "⏵ sintonizando %s\n", id)
}

func (p terminalPlayer) Play() {
	fmt.Fprintln(p.out, "⏵ play")
}

func (p terminalPlayer) Pause() {
	fmt.Fprintln(p.out, "⏸ pause")
}

func (p terminalPlayer) SetVolume(v int) {
	fmt.Fprintf(p.out, "🔊 volume %d\n", v)
}
