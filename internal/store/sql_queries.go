package store

const (
	createUser = `INSERT INTO users (email, auth_hash, public_key, encrypted_private_key)
    VALUES ($1, $2, $3, $4)
    RETURNING user_id, email, auth_hash, public_key, encrypted_private_key, created_at;`

	findUserByEmail = `SELECT user_id, email, auth_hash, public_key, encrypted_private_key, created_at
    FROM users
    WHERE email = $1;`

	getPublicKeyByEmail = `SELECT public_key
    FROM users
    WHERE email = $1;`

	upsertVault = `INSERT INTO vaults (user_id, encrypted_data, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id)
		DO UPDATE SET encrypted_data = EXCLUDED.encrypted_data, updated_at = NOW();`

	getVault = `SELECT encrypted_data
		FROM vaults
		WHERE user_id = $1;`

	createShare = `INSERT INTO shared_items (id, sender_email, recipient_email, encrypted_data, encrypted_key)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at;`

	deleteShareByIDAndRecipient = `DELETE FROM shared_items
		WHERE id = $1 AND recipient_email = $2;`
)
