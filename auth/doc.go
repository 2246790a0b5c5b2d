// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth guards the write endpoints of the API.

# Admin Key

Creating and deleting exercises requires the X-Admin-Key header to match the
configured ADMIN_KEY:

	if err := auth.ValidateRequest(r, cfg.AdminKey); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin key")
		return
	}

Keys are compared as SHA-256 digests with hmac.Equal, so the comparison is
constant time regardless of the provided key's length. When no admin key is
configured every request passes; the server logs a warning at startup.
*/
package auth
