package courtlistener

import (
	"context"
	"fmt"
	"strings"

	"github.com/abelbrown/docketwatch/internal/logging"
	"github.com/abelbrown/docketwatch/internal/model"
)

// maxParties caps how many party names the summary line carries.
const maxParties = 12

// BuildCaseSummary assembles a case-level summary for a docket. A zero
// docket ID yields nil. A failed docket fetch is treated as an empty
// payload, so every field degrades to its sentinel rather than aborting.
func (c *Client) BuildCaseSummary(ctx context.Context, docketID int64) *model.CaseSummary {
	if docketID == 0 {
		return nil
	}

	docket := c.FetchDocket(ctx, docketID)
	if docket == nil {
		logging.Warn("docket fetch failed, emitting sentinel summary", "docket_id", docketID)
		docket = map[string]any{}
	}

	courtID := orSentinel(firstNonEmpty(docket, "court", "court_id", "courtId"), model.Unconfirmed)
	courtName, courtAPIURL := c.CourtMetadata(ctx, courtID)

	return &model.CaseSummary{
		DocketID:     docketID,
		CaseName:     orSentinel(firstNonEmpty(docket, "case_name", "caseName"), model.Unconfirmed),
		DocketNumber: orSentinel(firstNonEmpty(docket, "docket_number", "docketNumber"), model.Unconfirmed),
		Court:        courtID,
		CourtName:    courtName,
		CourtAPIURL:  courtAPIURL,
		DateFiled:    orSentinel(isoDate(firstNonEmpty(docket, "date_filed", "dateFiled")), model.Unconfirmed),
		Status:       statusFromDocket(docket),
		Judge:        orSentinel(firstNonEmpty(docket, "assigned_to_str", "assignedToStr", "assigned_to", "assignedTo"), model.Unconfirmed),
		Magistrate:   orSentinel(firstNonEmpty(docket, "referred_to_str", "referredToStr", "referred_to", "referredTo"), model.Unconfirmed),
		NatureOfSuit: orSentinel(firstNonEmpty(docket, "nature_of_suit", "natureOfSuit"), model.Unconfirmed),
		Cause:        orSentinel(firstNonEmpty(docket, "cause"), model.Unconfirmed),
		Parties:      formatParties(c.fetchParties(ctx, docketID)),
		DocketURL:    c.absURL(firstNonEmpty(docket, "absolute_url", "absoluteUrl")),

		// Filled by a downstream complaint-matching step.
		ComplaintDocNo:  model.Unconfirmed,
		ComplaintLink:   "",
		ExtractedCauses: model.Unconfirmed,
	}
}

// statusFromDocket derives the status label from the termination date field.
func statusFromDocket(docket map[string]any) string {
	term := firstNonEmpty(docket, "date_terminated", "dateTerminated")
	if term != "" {
		return fmt.Sprintf("terminated(%s)", isoDate(term))
	}
	return "active/unknown"
}

// formatParties renders up to maxParties entries as "name(type)" joined
// with "; ", appending an ellipsis marker when more exist. Zero usable
// names yields the sentinel.
func formatParties(parties []map[string]any) string {
	limit := len(parties)
	if limit > maxParties {
		limit = maxParties
	}

	names := make([]string, 0, limit)
	for _, p := range parties[:limit] {
		name := firstNonEmpty(p, "name", "party_name", "partyName")
		if name == "" {
			continue
		}
		typ := firstNonEmpty(p, "party_type", "partyType", "role")
		if typ != "" {
			names = append(names, fmt.Sprintf("%s(%s)", name, typ))
		} else {
			names = append(names, name)
		}
	}

	if len(names) == 0 {
		return model.Unconfirmed
	}
	if len(parties) > maxParties {
		names = append(names, "…")
	}
	return strings.Join(names, "; ")
}
