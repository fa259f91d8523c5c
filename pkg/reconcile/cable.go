package reconcile

import (
	"context"
	"strconv"
	"strings"

	"github.com/meridian-net/netcollector/pkg/diff"
	"github.com/meridian-net/netcollector/pkg/netbox"
)

// CableDesired is one physical link a device's LLDP/CDP neighbor data
// implies, local-interface to remote-interface-on-the-same-run's-device-
// set. Cables to a neighbor outside the current run's device scope are
// never reconciled (spec.md §4.7's cleanup policy): OtherDeviceInScope
// tells the reconciler whether RemoteInterfaceID is resolvable this run.
type CableDesired struct {
	LocalInterface      string `validate:"required"`
	RemoteInterfaceID   int
	OtherDeviceInScope  bool
}

// reconcileCables converges physical links for one device's interfaces.
// Cables are never deleted to endpoints outside the run's scope, even
// under DeleteStale, since the reconciler can't tell whether an
// out-of-scope neighbor still carries that link (spec.md §4.7).
func reconcileCables(ctx context.Context, client *netbox.Client, ifaceIDs map[string]int, desired []CableDesired, opts Options) (EntityResult, error) {
	result := EntityResult{EntityType: "cable"}

	inScope := make(map[int]bool, len(ifaceIDs))
	for _, id := range ifaceIDs {
		inScope[id] = true
	}

	matchedExisting := make(map[int]bool)
	localIDsTouched := make(map[int]bool)

	for _, d := range desired {
		if !d.OtherDeviceInScope {
			continue
		}
		localID, ok := ifaceIDs[strings.ToLower(d.LocalInterface)]
		if !ok {
			continue
		}
		localIDsTouched[localID] = true

		want := netbox.CableRecord{
			TerminationAType: "dcim.interface", TerminationAID: localID,
			TerminationBType: "dcim.interface", TerminationBID: d.RemoteInterfaceID,
		}

		existingCables, err := client.ListCablesForInterface(ctx, localID)
		if err != nil {
			result.Errors = append(result.Errors, err)
			continue
		}

		var matched *netbox.CableRecord
		for i := range existingCables {
			if netbox.SameEndpoints(existingCables[i], want) {
				matched = &existingCables[i]
				break
			}
		}

		key := d.LocalInterface
		if matched != nil {
			matchedExisting[matched.ID] = true
			result.AlreadyExists++
			result.Diff.Changes = append(result.Diff.Changes, diff.ObjectChange{EntityType: "cable", Key: key, Kind: diff.ChangeNone})
			continue
		}

		result.Diff.Changes = append(result.Diff.Changes, diff.ObjectChange{EntityType: "cable", Key: key, Kind: diff.ChangeCreate})
		if opts.DryRun {
			continue
		}
		created, err := client.CreateCable(ctx, want)
		if err != nil {
			result.Errors = append(result.Errors, err)
			continue
		}
		matchedExisting[created.ID] = true
		result.Applied++
	}

	// Cleanup: a cable touching one of this run's local interfaces that
	// wasn't matched above is stale only if its other endpoint is also a
	// known in-scope interface this run — otherwise the neighbor simply
	// wasn't collected and the cable is "out of scope", per spec.md
	// §4.7, never a deletion candidate.
	for localID := range localIDsTouched {
		existingCables, err := client.ListCablesForInterface(ctx, localID)
		if err != nil {
			result.Errors = append(result.Errors, err)
			continue
		}
		for _, existing := range existingCables {
			if matchedExisting[existing.ID] {
				continue
			}
			other := existing.TerminationBID
			if existing.TerminationAID != localID {
				other = existing.TerminationAID
			}
			if !inScope[other] {
				continue
			}
			key := cableDeleteKey(existing)
			if !opts.DeleteStale {
				result.Diff.Changes = append(result.Diff.Changes, diff.ObjectChange{
					EntityType: "cable", Key: key, Kind: diff.ChangeSkip, Reason: "cleanup disabled",
				})
				continue
			}
			result.Diff.Changes = append(result.Diff.Changes, diff.ObjectChange{EntityType: "cable", Key: key, Kind: diff.ChangeDelete})
			if opts.DryRun {
				continue
			}
			if err := client.DeleteCable(ctx, existing.ID); err != nil {
				result.Errors = append(result.Errors, err)
				continue
			}
			matchedExisting[existing.ID] = true
			result.Applied++
		}
	}

	return result, nil
}

func cableDeleteKey(c netbox.CableRecord) string {
	return strconv.Itoa(c.TerminationAID) + "<->" + strconv.Itoa(c.TerminationBID)
}
