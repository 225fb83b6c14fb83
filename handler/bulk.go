package handler

import (
	"travel_manager/constants"
	"travel_manager/database"
	"travel_manager/model"
)

// applyBulkAction runs a bulk toolbar action one row at a time. There is no
// transaction around the loop: a failure partway leaves earlier rows mutated,
// and the result reports both sides so the client can show what happened.
func applyBulkAction(entity any, input model.BulkActionInput, deletable func(id uint) error) model.BulkActionResult {
	db := database.DB
	result := model.BulkActionResult{Succeeded: []uint{}}

	for _, id := range input.IDs {
		var err error
		switch input.Action {
		case constants.BULK_ACTION_ACTIVATE:
			err = db.Model(entity).Where("id = ?", id).Update("active", true).Error
		case constants.BULK_ACTION_DEACTIVATE:
			err = db.Model(entity).Where("id = ?", id).Update("active", false).Error
		case constants.BULK_ACTION_DELETE:
			if deletable != nil {
				err = deletable(id)
			}
			if err == nil {
				err = db.Where("id = ?", id).Delete(entity).Error
			}
		}
		if err != nil {
			if result.Failed == nil {
				result.Failed = map[uint]string{}
			}
			result.Failed[id] = err.Error()
			continue
		}
		result.Succeeded = append(result.Succeeded, id)
	}

	return result
}
