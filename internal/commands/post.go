package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/bizbooks-dev/bizbooks/internal/auditlog"
	"github.com/bizbooks-dev/bizbooks/internal/model"
	"github.com/bizbooks-dev/bizbooks/internal/vouchers"
)

func newPostCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "post <draft.json>",
		Short: "Validate and post a voucher draft",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPost(dir, args[0])
		},
	}

	cmd.Flags().StringVarP(&dir, "books", "C", ".", "books directory")

	return cmd
}

// applyItemDefaults fills in the rate and tax rate of itemized draft lines
// from the item master when the caller left them at zero.
func (b *books) applyItemDefaults(draft *model.VoucherDraft) {
	for i := range draft.Items {
		line := &draft.Items[i]
		it, ok := b.items.Get(line.ItemID)
		if !ok {
			continue
		}
		if line.Rate.IsZero() {
			line.Rate = it.Rate
		}
		if line.TaxRate.IsZero() {
			line.TaxRate = it.TaxRate
		}
	}
}

func runPost(dir, draftPath string) error {
	b, err := openBooks(dir)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(draftPath)
	if err != nil {
		return fmt.Errorf("reading draft: %w", err)
	}
	var draft model.VoucherDraft
	if err := json.Unmarshal(data, &draft); err != nil {
		return fmt.Errorf("parsing draft: %w", err)
	}
	b.applyItemDefaults(&draft)

	v, err := b.engine.Post(draft)
	var collision vouchers.IDCollisionError
	if errors.As(err, &collision) {
		// Numbering race: retry once against the latest collection state.
		log.Warn().Str("id", collision.ID).Msg("voucher number collision, retrying")
		v, err = b.engine.Post(draft)
	}
	if err != nil {
		return err
	}

	logEntry := auditlog.Entry{
		Timestamp: time.Now().UTC(),
		Actor:     b.cfg.Git.AuthorName,
		Action:    auditlog.ActionPost,
		VoucherID: v.ID,
		Details:   fmt.Sprintf("%s %s for %s", v.Type, v.Amount.StringFixed(2), v.Party),
	}
	if err := auditlog.Append(b.root, []auditlog.Entry{logEntry}); err != nil {
		return err
	}

	if err := b.save("post " + v.ID); err != nil {
		return err
	}

	log.Info().
		Str("id", v.ID).
		Str("type", string(v.Type)).
		Str("amount", v.Amount.StringFixed(2)).
		Msg("voucher posted")
	fmt.Printf("Posted %s\n", v.ID)
	return nil
}
