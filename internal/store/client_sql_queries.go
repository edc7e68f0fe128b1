// SPDX-License-Identifier: Apache-2.0

package store

const (
	enqueueRecord = `
		INSERT INTO queue (
			local_id,
			plate_number,
			latitude,
			longitude,
			zone,
			confidence,
			status,
			notes,
			image_ref,
			captured_at,
			sync_state
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`

	getQueueRecord = `
		SELECT
			local_id,
			plate_number,
			latitude,
			longitude,
			zone,
			confidence,
			status,
			notes,
			image_ref,
			captured_at,
			sync_state,
			synced_at
		FROM queue
		WHERE local_id = ?;`

	listPendingRecords = `
		SELECT
			local_id,
			plate_number,
			latitude,
			longitude,
			zone,
			confidence,
			status,
			notes,
			image_ref,
			captured_at,
			sync_state,
			synced_at
		FROM queue
		WHERE sync_state = 'pending'
		ORDER BY captured_at ASC;`

	markRecordSynced = `
		UPDATE queue SET
			sync_state = 'synced',
			synced_at  = ?
		WHERE local_id = ? AND sync_state = 'pending';`

	countPendingRecords = `
		SELECT COUNT(*)
		FROM queue
		WHERE sync_state = 'pending';`

	purgeSyncedRecords = `
		DELETE FROM queue
		WHERE sync_state = 'synced'
		  AND captured_at < ?;`
)
