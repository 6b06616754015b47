package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"hunterlog/internal/catalog"
	"hunterlog/internal/engine"
	"hunterlog/internal/ui"
)

func newInventoryCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "inventory",
		Aliases: []string{"inv", "items"},
		Short:   "List owned items and equipped gear",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cleanup, err := openService(cmd, opts)
			if err != nil {
				return err
			}
			defer cleanup()

			items, err := svc.Inventory()
			if err != nil {
				return err
			}
			equipped, err := svc.Equipped()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconBox, "Inventory"))
			if len(items) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("Empty. Run: hl init <username>"))
				return nil
			}
			for _, it := range items {
				mark := " "
				if e, ok := equipped[it.Type]; ok && e.ID == it.ID {
					mark = ui.Good.Render("E")
				}
				fmt.Fprintf(out, "%s %s %s %s\n", mark, ui.ItemName(it), ui.RarityText(it.Rarity),
					ui.Muted.Render(fmt.Sprintf("(%s, %s, lvl %d)", it.ID, it.Type, it.MinLevel())))
			}
			return nil
		},
	}
}

func newEquipCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "equip <item-id>",
		Short: "Equip an owned item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cleanup, err := openService(cmd, opts)
			if err != nil {
				return err
			}
			defer cleanup()

			id, err := resolveItem(svc, args[0])
			if err != nil {
				return err
			}
			res, err := svc.EquipItem(cmd.Context(), id)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Good.Render(ui.IconSword+" Equipped"), ui.ItemName(res.Item))
			if res.Replaced != "" && res.Replaced != res.Item.ID {
				fmt.Fprintln(out, ui.Muted.Render("replaced "+res.Replaced))
			}
			return nil
		},
	}
}

func newUnequipCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "unequip <item-id>",
		Short: "Unequip an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cleanup, err := openService(cmd, opts)
			if err != nil {
				return err
			}
			defer cleanup()

			id, err := resolveItem(svc, args[0])
			if err != nil {
				return err
			}
			changed, err := svc.UnequipItem(cmd.Context(), id)
			if err != nil {
				return err
			}
			if !changed {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render(id+" was not equipped"))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconDone+" Unequipped"), id)
			return nil
		},
	}
}

func resolveItem(svc *engine.Service, input string) (string, error) {
	items, err := svc.Inventory()
	if err != nil {
		return "", err
	}
	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	id, err := resolveID("item", ids, input)
	if err != nil {
		if _, ok := catalog.ItemByID(input); ok {
			return "", fmt.Errorf("%w: %s", engine.ErrItemNotOwned, input)
		}
		return "", err
	}
	return id, nil
}
