package reconcile

import (
	"context"
	"strconv"

	"github.com/meridian-net/netcollector/pkg/canon"
	"github.com/meridian-net/netcollector/pkg/diff"
	"github.com/meridian-net/netcollector/pkg/netbox"
)

// VLANDesired is one VLAN a device reports via its switchport enrichment.
type VLANDesired struct {
	VID  int    `validate:"required,min=1,max=4094"`
	Name string `validate:"required"`
	Site string // site name; may be shared across multiple devices/sites
}

// reconcileVLANs converges VLANs against the site-scoped VLAN table.
// VLAN identity is (site, VID) per spec.md §4.7: the same VID at two
// different sites is two distinct VLANs, never a duplicate of each
// other. Within a single site, a second desired entry for an already-seen
// VID in the same run is treated as already-satisfied rather than a
// second create.
func reconcileVLANs(ctx context.Context, client *netbox.Client, desired []VLANDesired, opts Options) (EntityResult, error) {
	result := EntityResult{EntityType: "vlan"}

	siteIDs := make(map[string]int)
	seen := make(map[string]bool)
	for _, d := range desired {
		if err := validate.Struct(d); err != nil {
			result.Errors = append(result.Errors, err)
			continue
		}

		siteID, err := resolveSiteID(ctx, client, siteIDs, d.Site)
		if err != nil {
			result.Errors = append(result.Errors, err)
			continue
		}

		dedupKey := vlanDedupKey(siteID, d.VID)
		if seen[dedupKey] {
			result.Diff.Changes = append(result.Diff.Changes, diff.ObjectChange{EntityType: "vlan", Key: vlanKey(d.VID, d.Site), Kind: diff.ChangeNone})
			continue
		}
		seen[dedupKey] = true

		existing, err := findVLAN(ctx, client, siteID, d)
		if err != nil {
			result.Errors = append(result.Errors, err)
			continue
		}

		if existing == nil {
			result.Diff.Changes = append(result.Diff.Changes, diff.ObjectChange{EntityType: "vlan", Key: vlanKey(d.VID, d.Site), Kind: diff.ChangeCreate})
			if opts.DryRun {
				continue
			}
			if _, err := client.CreateVLAN(ctx, netbox.VLANRecord{VID: d.VID, Name: d.Name, Site: siteID}); err != nil {
				result.Errors = append(result.Errors, err)
				continue
			}
			result.Applied++
			continue
		}

		if existing.Name == d.Name {
			result.Diff.Changes = append(result.Diff.Changes, diff.ObjectChange{EntityType: "vlan", Key: vlanKey(d.VID, d.Site), Kind: diff.ChangeNone})
			continue
		}

		fields := []diff.FieldChange{{Field: "name", Current: existing.Name, Desired: d.Name}}
		result.Diff.Changes = append(result.Diff.Changes, diff.ObjectChange{EntityType: "vlan", Key: vlanKey(d.VID, d.Site), Kind: diff.ChangeUpdate, Fields: fields})
		if opts.DryRun {
			continue
		}
		updated := *existing
		updated.Name = d.Name
		updated.Site = siteID
		if _, err := client.UpdateVLAN(ctx, existing.ID, updated); err != nil {
			result.Errors = append(result.Errors, err)
			continue
		}
		result.Applied++
	}

	return result, nil
}

// resolveSiteID resolves a site name to its NetBox ID, caching within the
// run so a fleet of devices at the same site issues one lookup, not one
// per VLAN. An empty site name resolves to 0 (global/unscoped).
func resolveSiteID(ctx context.Context, client *netbox.Client, cache map[string]int, site string) (int, error) {
	if site == "" {
		return 0, nil
	}
	if id, ok := cache[site]; ok {
		return id, nil
	}
	s, err := client.EnsureSite(ctx, site, canon.Slug(site))
	if err != nil {
		return 0, err
	}
	cache[site] = s.ID
	return s.ID, nil
}

func findVLAN(ctx context.Context, client *netbox.Client, siteID int, d VLANDesired) (*netbox.VLANRecord, error) {
	all, err := client.ListVLANs(ctx, siteID)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].VID == d.VID && all[i].Site == siteID {
			return &all[i], nil
		}
	}
	return nil, nil
}

func vlanDedupKey(siteID, vid int) string {
	return strconv.Itoa(siteID) + "/" + strconv.Itoa(vid)
}

func vlanKey(vid int, site string) string {
	if site == "" {
		return "vlan " + strconv.Itoa(vid)
	}
	return site + "/vlan " + strconv.Itoa(vid)
}
