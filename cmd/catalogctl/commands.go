package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	pb "github.com/fekuna/omnipos-catalog-service/api/catalog/v1"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
)

// dialFunc opens a client for addr. The returned func releases the connection.
type dialFunc func(addr string) (pb.CategoryServiceClient, func() error, error)

func dialCatalog(addr string) (pb.CategoryServiceClient, func() error, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, nil, err
	}
	return pb.NewCategoryServiceClient(conn), conn.Close, nil
}

type options struct {
	addr    string
	lang    string
	timeout time.Duration
}

func newRootCmd(dial dialFunc) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:          "catalogctl",
		Short:        "Inspect the catalog category directory",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&opts.addr, "addr", "localhost:8082", "catalog gRPC address")
	root.PersistentFlags().StringVar(&opts.lang, "lang", "en", "language of error messages")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", 10*time.Second, "request timeout")

	// withClient runs fn against a fresh connection bound to the command's context.
	withClient := func(cmd *cobra.Command, fn func(ctx context.Context, c pb.CategoryServiceClient) error) error {
		client, closeFn, err := dial(opts.addr)
		if err != nil {
			return fmt.Errorf("dial %s: %w", opts.addr, err)
		}
		defer closeFn()

		ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
		defer cancel()
		ctx = metadata.AppendToOutgoingContext(ctx, "accept-language", opts.lang)
		return fn(ctx, client)
	}

	root.AddCommand(newTreeCmd(withClient), newBranchCmd(withClient), newValidateCmd(withClient))
	return root
}

type clientRunner func(cmd *cobra.Command, fn func(ctx context.Context, c pb.CategoryServiceClient) error) error

func newTreeCmd(run clientRunner) *cobra.Command {
	var parent int64
	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Print the category tree, indented by depth",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, func(ctx context.Context, c pb.CategoryServiceClient) error {
				req := &pb.GetCategoryTreeRequest{}
				if parent > 0 {
					req.ParentID = &parent
				}
				resp, err := c.GetCategoryTree(ctx, req)
				if err != nil {
					return err
				}
				printTree(cmd.OutOrStdout(), resp)
				return nil
			})
		},
	}
	cmd.Flags().Int64Var(&parent, "parent", 0, "print only the subtree below this category")
	return cmd
}

func newBranchCmd(run clientRunner) *cobra.Command {
	return &cobra.Command{
		Use:   "branch <category-id>",
		Short: "Print the ids of a category and all of its subcategories",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil || id <= 0 {
				return fmt.Errorf("invalid category id %q", args[0])
			}
			return run(cmd, func(ctx context.Context, c pb.CategoryServiceClient) error {
				resp, err := c.GetCategoryBranch(ctx, &pb.GetCategoryBranchRequest{CategoryID: id})
				if err != nil {
					return err
				}
				ids := make([]string, len(resp.CategoryIDs))
				for i, v := range resp.CategoryIDs {
					ids[i] = strconv.FormatInt(v, 10)
				}
				fmt.Fprintln(cmd.OutOrStdout(), strings.Join(ids, " "))
				return nil
			})
		},
	}
}

func newValidateCmd(run clientRunner) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the directory for orphans, cycles and duplicate ids",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, func(ctx context.Context, c pb.CategoryServiceClient) error {
				resp, err := c.ValidateCategories(ctx, &pb.ValidateCategoriesRequest{})
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if resp.OK {
					fmt.Fprintln(out, "ok")
					return nil
				}
				report(out, "duplicates", resp.Duplicates)
				report(out, "orphans", resp.Orphans)
				report(out, "cycles", resp.Cycles)
				report(out, "detached", resp.Detached)
				return fmt.Errorf("category directory is inconsistent")
			})
		},
	}
}

func report(w io.Writer, label string, ids []int64) {
	if len(ids) == 0 {
		return
	}
	fmt.Fprintf(w, "%s: %v\n", label, ids)
}

// printTree writes one line per category, depth first, two spaces per level.
func printTree(w io.Writer, resp *pb.GetCategoryTreeResponse) {
	type row struct {
		node  *pb.CategoryNode
		level int
	}

	fmt.Fprintf(w, "# version %s\n", resp.Version)
	stack := make([]row, 0, len(resp.Nodes))
	for i := len(resp.Nodes) - 1; i >= 0; i-- {
		stack = append(stack, row{node: resp.Nodes[i]})
	}
	for len(stack) > 0 {
		r := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		fmt.Fprintf(w, "%s%s (%d)\n", strings.Repeat("  ", r.level), r.node.Name, r.node.CategoryID)
		for i := len(r.node.Subcategories) - 1; i >= 0; i-- {
			stack = append(stack, row{node: r.node.Subcategories[i], level: r.level + 1})
		}
	}
}
