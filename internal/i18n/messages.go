package i18n

var catalogs = map[string]map[string]string{
	"en-US": {
		"error.bad_request":               "invalid request",
		"error.unauthorized":              "unauthorized",
		"error.forbidden":                 "permission denied",
		"error.internal":                  "internal error, please retry",
		"error.rate_limited":              "too many requests, please try again in %d seconds",
		"error.rate_limit_unavailable":    "rate limiter unavailable",
		"error.login_too_many":            "too many login attempts, please try again in %d seconds",
		"error.login_failed":              "incorrect email or password",
		"error.register_failed":           "registration failed",
		"error.email_exists":              "email is already registered",
		"error.username_exists":           "username is already taken",
		"error.password_policy":           "password does not meet the security policy",
		"error.password_incorrect":        "current password is incorrect",
		"error.password_min_length":       "password must be at least %d characters",
		"error.password_require_upper":    "password must contain an uppercase letter",
		"error.password_require_lower":    "password must contain a lowercase letter",
		"error.password_require_number":   "password must contain a number",
		"error.admin_id_invalid":          "invalid admin id",
		"error.admin_id_type_invalid":     "unexpected admin id type",
		"error.auth_header_missing":       "authorization header missing",
		"error.auth_header_invalid":       "authorization header invalid",
		"error.jwt_secret_missing":        "server auth is not configured",
		"error.token_invalid":             "invalid or expired token",
		"error.user_id_invalid":           "invalid user id",
		"error.user_id_type_invalid":      "unexpected user id type",
		"error.post_not_found":            "post not found",
		"error.post_fetch_failed":         "failed to load posts",
		"error.post_sources_unavailable":  "content sources are unavailable, please retry",
		"error.post_readonly_source":      "cannot modify externally sourced content",
		"error.post_validation_failed":    "title, content and category are required",
		"error.post_create_failed":        "failed to create post",
		"error.post_update_failed":        "failed to update post",
		"error.post_delete_failed":        "failed to delete post",
		"error.category_fetch_failed":     "failed to load categories",
		"error.category_exists":           "category already exists",
		"error.category_in_use":           "category still has posts",
		"error.category_not_found":        "category not found",
		"error.category_create_failed":    "failed to create category",
		"error.category_update_failed":    "failed to update category",
		"error.category_delete_failed":    "failed to delete category",
		"error.comment_invalid":           "comment content is required",
		"error.comment_create_failed":     "failed to add comment",
		"error.profile_fetch_failed":      "failed to load profile",
		"error.profile_update_failed":     "failed to update profile",
		"error.notification_fetch_failed": "failed to load notifications",
		"error.notification_not_found":   "notification not found",
		"error.notification_update_failed": "failed to update notification",
	},
	"th-TH": {
		"error.bad_request":              "คำขอไม่ถูกต้อง",
		"error.unauthorized":             "กรุณาเข้าสู่ระบบ",
		"error.forbidden":                "ไม่มีสิทธิ์เข้าถึง",
		"error.internal":                 "เกิดข้อผิดพลาด กรุณาลองใหม่",
		"error.rate_limited":             "คำขอถี่เกินไป กรุณาลองใหม่ใน %d วินาที",
		"error.login_too_many":           "พยายามเข้าสู่ระบบบ่อยเกินไป กรุณาลองใหม่ใน %d วินาที",
		"error.login_failed":             "อีเมลหรือรหัสผ่านไม่ถูกต้อง",
		"error.email_exists":             "อีเมลนี้ถูกใช้งานแล้ว",
		"error.username_exists":          "ชื่อผู้ใช้นี้ถูกใช้งานแล้ว",
		"error.password_policy":          "รหัสผ่านไม่ตรงตามนโยบายความปลอดภัย",
		"error.password_incorrect":       "รหัสผ่านปัจจุบันไม่ถูกต้อง",
		"error.token_invalid":            "โทเคนไม่ถูกต้องหรือหมดอายุ",
		"error.post_not_found":           "ไม่พบบทความ",
		"error.post_fetch_failed":        "โหลดบทความไม่สำเร็จ",
		"error.post_sources_unavailable": "แหล่งข้อมูลบทความไม่พร้อมใช้งาน กรุณาลองใหม่",
		"error.post_readonly_source":     "ไม่สามารถแก้ไขเนื้อหาจากแหล่งภายนอกได้",
		"error.post_validation_failed":   "กรุณากรอกชื่อเรื่อง เนื้อหา และหมวดหมู่",
		"error.category_fetch_failed":    "โหลดหมวดหมู่ไม่สำเร็จ",
		"error.category_in_use":          "หมวดหมู่นี้ยังมีบทความอยู่",
		"error.comment_invalid":          "กรุณากรอกความคิดเห็น",
		"error.comment_create_failed":    "เพิ่มความคิดเห็นไม่สำเร็จ",
	},
}
