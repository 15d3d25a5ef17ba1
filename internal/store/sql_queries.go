package store

const (
	createUser = `INSERT INTO users (user_id, user_name, first_name, last_name, email, phone_number, password_hash, account_status)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    RETURNING user_id, user_name, first_name, last_name, email, phone_number, password_hash, account_status, created_at;`

	findUserByID = `SELECT user_id, user_name, first_name, last_name, email, phone_number, password_hash, account_status, created_at
    FROM users
    WHERE user_id = $1;`

	findUserByUserName = `SELECT user_id, user_name, first_name, last_name, email, phone_number, password_hash, account_status, created_at
    FROM users
    WHERE user_name = $1;`

	updateUser = `UPDATE users
    SET first_name = $2, last_name = $3, email = $4, phone_number = $5
    WHERE user_id = $1;`

	deleteUser = `DELETE FROM users
    WHERE user_id = $1;`

	updateUserPasswordHash = `UPDATE users
    SET password_hash = $2
    WHERE user_id = $1;`

	updateUserAccountStatus = `UPDATE users
    SET account_status = $2
    WHERE user_id = $1;`

	getUserRoles = `SELECT role
    FROM user_roles
    WHERE user_id = $1
    ORDER BY role;`

	assignUserRole = `INSERT INTO user_roles (user_id, role)
    VALUES ($1, $2);`

	removeUserRole = `DELETE FROM user_roles
    WHERE user_id = $1 AND role = $2;`

	insertPasswordHistory = `INSERT INTO password_history (id, user_id, password_hash, created_at)
    VALUES ($1, $2, $3, $4);`

	listPasswordHistoryByUser = `SELECT id, user_id, password_hash, created_at
    FROM password_history
    WHERE user_id = $1
    ORDER BY created_at DESC, id DESC;`

	deletePasswordHistoryByIDs = `DELETE FROM password_history
    WHERE user_id = $1 AND id = ANY($2);`

	deleteAllPasswordHistory = `DELETE FROM password_history
    WHERE user_id = $1;`

	insertAuditEvent = `INSERT INTO audit_events (id, actor_id, action, target_id, details, created_at)
    VALUES ($1, $2, $3, $4, $5, $6);`

	listCountries = `SELECT code, name, dial_code
    FROM countries
    ORDER BY code;`

	findCountryByCode = `SELECT code, name, dial_code
    FROM countries
    WHERE code = $1;`
)
