package defense

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/thesisdesk/backend/internal/domain/defense"
	"github.com/thesisdesk/backend/internal/domain/shared"
)

// applyAssignments links each submitted group to the defense and creates or
// re-points the grading row for every listed lecturer. A lecturer already on
// this defense keeps their row (and any recorded score); only the group
// reference and schedule are refreshed. Returns the touched aggregates so
// the caller can publish their events after commit.
func applyAssignments(ctx context.Context, repos CascadeRepos, d *defense.Defense, assignments []GroupAssignment) ([]shared.AggregateRoot, error) {
	var dirty []shared.AggregateRoot

	for _, assignment := range assignments {
		group, err := repos.Groups.FindByID(ctx, assignment.GroupID)
		if err != nil {
			return nil, err
		}
		if err := group.AssignDefense(d.ID); err != nil {
			return nil, err
		}
		if err := repos.Groups.Save(ctx, group); err != nil {
			return nil, err
		}
		dirty = append(dirty, group)

		for _, lecturerID := range assignment.LecturerIDs {
			existing, err := repos.LecturerDefenses.FindByLecturerAndDefense(ctx, lecturerID, d.ID)
			switch {
			case err == nil:
				if err := existing.Reassign(assignment.GroupID); err != nil {
					return nil, err
				}
				existing.SyncSchedule(d)
				if err := repos.LecturerDefenses.Save(ctx, existing); err != nil {
					return nil, err
				}
			case errors.Is(err, shared.ErrNotFound):
				ld, err := defense.NewLecturerDefense(lecturerID, assignment.GroupID, d)
				if err != nil {
					return nil, err
				}
				if err := repos.LecturerDefenses.Save(ctx, ld); err != nil {
					return nil, err
				}
			default:
				return nil, err
			}
		}
	}

	return dirty, nil
}

// reconcileAssignments removes what the submitted committee no longer
// contains: grading rows of dropped lecturers and defense links of dropped
// groups. Additions and re-points are applyAssignments' job.
func reconcileAssignments(ctx context.Context, repos CascadeRepos, d *defense.Defense, existing []defense.LecturerDefense, assignments []GroupAssignment) error {
	keepLecturers := make(map[uuid.UUID]struct{})
	keepGroups := make(map[uuid.UUID]struct{})
	for _, assignment := range assignments {
		keepGroups[assignment.GroupID] = struct{}{}
		for _, lecturerID := range assignment.LecturerIDs {
			keepLecturers[lecturerID] = struct{}{}
		}
	}

	var dropped []uuid.UUID
	for i := range existing {
		if _, ok := keepLecturers[existing[i].LecturerID]; !ok {
			dropped = append(dropped, existing[i].LecturerID)
		}
	}
	if err := repos.LecturerDefenses.DeleteByDefenseAndLecturers(ctx, d.ID, dropped); err != nil {
		return err
	}

	linked, err := repos.Groups.FindByDefense(ctx, d.ID)
	if err != nil {
		return err
	}
	for i := range linked {
		if _, ok := keepGroups[linked[i].ID]; ok {
			continue
		}
		linked[i].UnassignDefense()
		if err := repos.Groups.Save(ctx, &linked[i]); err != nil {
			return err
		}
	}

	return nil
}
