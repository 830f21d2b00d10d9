package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Shubham-Khatrii/budgetwise/internal/cli"
	"github.com/Shubham-Khatrii/budgetwise/internal/currency"
	"github.com/Shubham-Khatrii/budgetwise/internal/model"
)

func notificationsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notifications",
		Short: "Review notifications",
	}

	cmd.AddCommand(notificationsListCmd())
	cmd.AddCommand(notificationsReadCmd())
	cmd.AddCommand(notificationsReadAllCmd())

	return cmd
}

func notificationsListCmd() *cobra.Command {
	var unreadOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List notifications, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			notifications, err := store.Notifications(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list notifications: %w", err)
			}

			for _, n := range notifications {
				if unreadOnly && n.Read {
					continue
				}
				marker := "•"
				if n.Read {
					marker = " "
				}
				fmt.Printf("%s %s [%s] %s\n    %s (%s)\n",
					marker, notificationBadge(n.Type), n.ID, n.Title,
					n.Message, currency.FormatDate(n.Date))
			}

			unread, err := store.UnreadNotifications(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to count unread notifications: %w", err)
			}
			if unread > 0 {
				fmt.Println(cli.FormatInfo(fmt.Sprintf("%d unread", unread)))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&unreadOnly, "unread", false, "show unread notifications only")

	return cmd
}

func notificationsReadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "read ID",
		Short: "Mark a notification as read",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.MarkNotificationAsRead(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("failed to mark notification as read: %w", err)
			}
			return nil
		},
	}
}

func notificationsReadAllCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "read-all",
		Short: "Mark every notification as read",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.MarkAllNotificationsAsRead(cmd.Context()); err != nil {
				return fmt.Errorf("failed to mark notifications as read: %w", err)
			}
			return nil
		},
	}
}

func notificationBadge(t model.NotificationType) string {
	switch t {
	case model.NotificationWarning:
		return cli.WarningStyle.Render("warning")
	case model.NotificationSuccess:
		return cli.SuccessStyle.Render("success")
	case model.NotificationError:
		return cli.ErrorStyle.Render("error")
	default:
		return cli.InfoStyle.Render("info")
	}
}
