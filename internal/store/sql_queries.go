package store

const (
	createUser = `INSERT INTO users (id, username, password_hash, registered_at)
    VALUES ($1, $2, $3, $4)
    RETURNING id, username, password_hash, registered_at;`

	findUserByUsername = `SELECT id, username, password_hash, registered_at
    FROM users
    WHERE username = $1;`

	findUserByID = `SELECT id, username, password_hash, registered_at
    FROM users
    WHERE id = $1;`

	createPlaylist = `INSERT INTO playlists (id, owner_id, title, tracks, created_at, updated_at, version)
    VALUES ($1, $2, $3, $4, $5, $6, 1)
    RETURNING id, owner_id, title, tracks, created_at, updated_at, version;`

	findPlaylistByID = `SELECT id, owner_id, title, tracks, created_at, updated_at, version
    FROM playlists
    WHERE id = $1;`

	findPlaylistsByOwner = `SELECT id, owner_id, title, tracks, created_at, updated_at, version
    FROM playlists
    WHERE owner_id = $1
    ORDER BY created_at DESC;`

	findPlaylistByOwnerAndTitle = `SELECT id, owner_id, title, tracks, created_at, updated_at, version
    FROM playlists
    WHERE owner_id = $1 AND lower(title) = lower($2);`

	updatePlaylist = `UPDATE playlists
    SET title = $1, tracks = $2, updated_at = $3, version = version + 1
    WHERE id = $4 AND version = $5
    RETURNING id, owner_id, title, tracks, created_at, updated_at, version;`

	deletePlaylist = `DELETE FROM playlists
    WHERE id = $1;`
)
