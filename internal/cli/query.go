package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vladislavprovich/cosmos-rest/internal/service"
)

func init() {
	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(queriesCmd)
}

var queryCmd = &cobra.Command{
	Use:   "query <name> [key=value...]",
	Short: "Run one registry query",
	Long: "Run one registry query and print the node's JSON response.\n" +
		"Placeholders are passed as key=value, e.g. cosmosq query bank_balances_address address=cosmos1...",
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		params, err := parseParams(args[1:])
		if err != nil {
			return err
		}

		srv, err := newService(ctx)
		if err != nil {
			return err
		}

		resp, err := srv.Query(ctx, &service.QueryRequest{Name: args[0], Params: params})
		if err != nil {
			return err
		}

		return writeJSON(cmd.OutOrStdout(), resp)
	},
}

var queriesCmd = &cobra.Command{
	Use:   "queries",
	Short: "List registry queries and their parameters",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		srv, err := newService(ctx)
		if err != nil {
			return err
		}

		return writeQueries(cmd.OutOrStdout(), srv.Queries(ctx))
	},
}

func parseParams(args []string) (map[string]string, error) {
	params := make(map[string]string, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid parameter %q, expected key=value", arg)
		}
		params[key] = value
	}

	return params, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeQueries(w io.Writer, infos []service.QueryInfo) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tPATH\tPARAMS")
	for _, info := range infos {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", info.Name, info.Path, strings.Join(info.Params, ","))
	}
	return tw.Flush()
}
