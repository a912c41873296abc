package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"storefront/domain"
	"storefront/notify"
)

type cartView struct {
	Lines     []domain.CartLine `json:"lines"`
	ItemCount int               `json:"itemCount"`
	Total     string            `json:"total"`
}

func newCartCmd() *cobra.Command {
	cartCmd := &cobra.Command{
		Use:   "cart",
		Short: "Show and change the shopping cart",
	}

	// show
	var output string
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show cart contents and totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap := app.cart.Snapshot()
			if output == "json" {
				return printJSON(cmd.OutOrStdout(), cartView{
					Lines:     snap.Lines,
					ItemCount: snap.ItemCount,
					Total:     snap.Total.StringFixed(2),
				})
			}
			w := cmd.OutOrStdout()
			for _, l := range snap.Lines {
				fmt.Fprintf(w, "%d | %s | %.2f x %d\n", l.Product.ID, l.Product.Name, l.Product.Price, l.Quantity)
			}
			fmt.Fprintf(w, "items: %d\ntotal: %s\n", snap.ItemCount, snap.Total.StringFixed(2))
			return nil
		},
	}
	showCmd.Flags().StringVar(&output, "output", "", "output format")
	cartCmd.AddCommand(showCmd)

	// add
	addCmd := &cobra.Command{
		Use:   "add <id>",
		Short: "Add one unit of a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// the post-run hook is skipped on error, and a rejected add queues a notice
			defer flushNotices(cmd.ErrOrStderr())

			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			p, err := app.catalog.Get(id)
			if err != nil {
				return err
			}
			if err := app.cart.AddToCart(cmd.Context(), p); err != nil {
				return err
			}
			app.feedback.Animate(p.ID)
			app.notices.Add(fmt.Sprintf("Added %s to cart", p.Name), notify.Success, notify.DefaultTimeout)
			return nil
		},
	}
	cartCmd.AddCommand(addCmd)

	// remove
	cartCmd.AddCommand(&cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a product from the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			app.cart.RemoveFromCart(cmd.Context(), id)
			return nil
		},
	})

	// set
	cartCmd.AddCommand(&cobra.Command{
		Use:   "set <id> <quantity>",
		Short: "Set a line quantity, clamped to [1, stock]",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			q, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid quantity %q", args[1])
			}
			app.cart.UpdateQuantity(cmd.Context(), id, q)
			return nil
		},
	})

	// inc
	cartCmd.AddCommand(&cobra.Command{
		Use:   "inc <id>",
		Short: "Increase a line quantity by one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			app.cart.IncrementQuantity(cmd.Context(), id)
			return nil
		},
	})

	// dec
	cartCmd.AddCommand(&cobra.Command{
		Use:   "dec <id>",
		Short: "Decrease a line quantity by one (never below 1)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			app.cart.DecrementQuantity(cmd.Context(), id)
			return nil
		},
	})

	// clear
	cartCmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Empty the cart",
		RunE: func(cmd *cobra.Command, args []string) error {
			app.cart.ClearCart(cmd.Context())
			return nil
		},
	})

	return cartCmd
}
