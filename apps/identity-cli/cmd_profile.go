package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"sort"

	"github.com/spf13/cobra"

	"github.com/astrixforge/Device-Masker-sub000/apps/identity-cli/internal/client"
	"github.com/astrixforge/Device-Masker-sub000/pkg/apperr"
	"github.com/astrixforge/Device-Masker-sub000/pkg/logging"
	"github.com/astrixforge/Device-Masker-sub000/pkg/model"
)

func newProfileCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage stored profiles through identity-api",
		Long: `Create, inspect and regenerate profiles stored by identity-api.

Available subcommands:
  create     - Create a profile with freshly generated identifiers
  show       - Show a profile with its identifiers and group states
  list       - List profile IDs
  delete     - Delete a profile
  regenerate - Regenerate one identifier or a whole correlation group
  enable     - Enable an identifier
  disable    - Disable an identifier
  values     - Show the enabled identifier values`,
	}

	cmd.AddCommand(
		newProfileCreateCmd(a),
		newProfileShowCmd(a),
		newProfileListCmd(a),
		newProfileDeleteCmd(a),
		newProfileRegenerateCmd(a),
		newProfileEnabledCmd(a, "enable", "Enable an identifier of a profile", true),
		newProfileEnabledCmd(a, "disable", "Disable an identifier of a profile", false),
		newProfileValuesCmd(a),
	)
	return cmd
}

func newProfileCreateCmd(a *app) *cobra.Command {
	var (
		ref  referenceFlags
		id   string
		name string
	)

	cmd := &cobra.Command{
		Use:   "create --name NAME",
		Short: "Create a profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.api.CreateProfile(cmd.Context(), &client.CreateProfileRequest{
				ID:        id,
				Name:      name,
				Reference: ref.remote(),
			})
			if err != nil {
				return err
			}
			slog.Info("profile created",
				logging.WithEventID("PROFILE_CREATE"),
				logging.WithProfileID(p.ID),
			)
			return printJSON(cmd.OutOrStdout(), p)
		},
	}

	ref.bind(cmd, false)
	cmd.Flags().StringVar(&id, "id", "", "Profile ID (generated when empty)")
	cmd.Flags().StringVar(&name, "name", "", "Profile name")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newProfileShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.api.GetProfile(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), p)
		},
	}
}

func newProfileListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List profile IDs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := a.api.ListProfiles(cmd.Context())
			if err != nil {
				return err
			}
			for _, id := range ids {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), id); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newProfileDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.api.DeleteProfile(cmd.Context(), args[0])
		},
	}
}

func newProfileRegenerateCmd(a *app) *cobra.Command {
	var (
		ref   referenceFlags
		group string
	)

	cmd := &cobra.Command{
		Use:   "regenerate <id> [type]",
		Short: "Regenerate one identifier or a whole correlation group",
		Long: `Regenerate identifiers of a stored profile.

With a type argument only that identifier is regenerated and the rest of
its correlation group is kept (e.g. a new PHONE_NUMBER on the same carrier).
With --group the whole group is regenerated; --carrier, --preset or
--country switch the group to a new reference object first.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			ctx := cmd.Context()

			if len(args) == 2 {
				if group != "" {
					return apperr.NewValidationError("group", "cannot be combined with a type argument")
				}
				t, err := model.ParseSpoofType(args[1])
				if err != nil {
					return err
				}
				p, err := a.api.RegenerateField(ctx, id, string(t))
				if err != nil {
					return err
				}
				logRegenerated(a, p, "FIELD_REGEN", []model.SpoofType{t})
				return printJSON(cmd.OutOrStdout(), p)
			}

			if group == "" {
				return apperr.NewValidationError("type", "a type argument or --group is required")
			}
			g, err := parseGroup(group)
			if err != nil {
				return err
			}
			p, err := a.api.RegenerateGroup(ctx, id, string(g), ref.remote())
			if err != nil {
				return err
			}
			logRegenerated(a, p, "GROUP_REGEN", g.Types())
			return printJSON(cmd.OutOrStdout(), p)
		},
	}

	ref.bind(cmd, false)
	cmd.Flags().StringVar(&group, "group", "", "Correlation group to regenerate (sim, hardware, location or a group name)")
	return cmd
}

func newProfileEnabledCmd(a *app, use, short string, enabled bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id> <type>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := model.ParseSpoofType(args[1])
			if err != nil {
				return err
			}
			p, err := a.api.SetEnabled(cmd.Context(), args[0], string(t), enabled)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), p)
		},
	}
}

func newProfileValuesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "values <id>",
		Short: "Show the enabled identifier values of a profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := a.api.Values(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			keys := make([]string, 0, len(values))
			for k := range values {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", k, values[k]); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// logRegenerated は再生成された値をマスクしてデバッグログに出す。
func logRegenerated(a *app, p *client.Profile, eventID string, types []model.SpoofType) {
	attrs := []any{logging.WithEventID(eventID), logging.WithProfileID(p.ID)}
	for _, ident := range p.Identifiers {
		for _, t := range types {
			if ident.Type == string(t) && ident.Value != nil {
				attrs = append(attrs, slog.String(ident.Type, a.masker.Identifier(ident.Type, *ident.Value)))
			}
		}
	}
	slog.Debug("profile regenerated", attrs...)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
