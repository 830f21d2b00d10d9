package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Shubham-Khatrii/budgetwise/internal/cli"
)

func feedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "feed",
		Short: "Browse the community feed",
	}

	cmd.AddCommand(feedListCmd())
	cmd.AddCommand(feedPostCmd())
	cmd.AddCommand(feedLikeCmd())

	return cmd
}

func feedListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List community posts, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			posts, err := store.Posts(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list posts: %w", err)
			}

			for i, p := range posts {
				if i > 0 {
					fmt.Println()
				}
				fmt.Printf("%s %s %s\n",
					cli.BoldStyle.Render(p.Author.Name),
					cli.SubtleStyle.Render("["+p.ID+"]"),
					cli.SubtleStyle.Render(p.Timestamp))
				fmt.Println(p.Content)
				fmt.Println(cli.SubtleStyle.Render(
					fmt.Sprintf("♥ %d   💬 %d   ↗ %d", p.Likes, p.Comments, p.Shares)))
			}
			return nil
		},
	}
}

func feedPostCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "post CONTENT",
		Short: "Share a post with the community",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content := strings.TrimSpace(strings.Join(args, " "))
			if content == "" {
				return fmt.Errorf("post content cannot be empty")
			}

			store, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if _, err := store.AddCommunityPost(cmd.Context(), content); err != nil {
				return fmt.Errorf("failed to add post: %w", err)
			}
			return nil
		},
	}
}

func feedLikeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "like ID",
		Short: "Like a post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.LikePost(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("failed to like post: %w", err)
			}
			return nil
		},
	}
}
