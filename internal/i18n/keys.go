// internal/i18n/keys.go
package i18n

// Translation keys used across handlers and middleware.
const (
	KeyAuthRequired      = "auth.required"
	KeyAuthInvalidToken  = "auth.invalid_token"
	KeyAuthTokenExpired  = "auth.token_expired"
	KeyAdminAccessDenied = "admin.access_denied"

	KeyValidationInvalid = "validation.invalid"

	KeyProductNotFound   = "product.not_found"
	KeyProductCreated    = "product.created"
	KeyProductUpdated    = "product.updated"
	KeyProductDeleted    = "product.deleted"
	KeyProductOutOfStock = "product.out_of_stock"

	KeyCategoryCreated = "category.created"

	KeyOrderRecorded     = "order.recorded"
	KeyOrderMissingUser  = "order.missing_user"
	KeyOrderMissingItems = "order.missing_items"

	KeyFavoriteAdded     = "favorite.added"
	KeyFavoriteRemoved   = "favorite.removed"
	KeyFavoriteDuplicate = "favorite.duplicate"

	KeyNotificationsAllRead = "notification.all_read"

	KeyFileUploadSuccess = "file.upload_success"
	KeyFileUploadFailed  = "file.upload_failed"
)

var defaultEnglish = map[string]string{
	"auth.required":       "Authentication required",
	"auth.invalid_token":  "Invalid authorization token",
	"auth.token_expired":  "Authorization token expired",
	"admin.access_denied": "Admin access required",

	"validation.invalid": "Invalid %s",

	"product.not_found":    "Product not found",
	"product.created":      "Product created successfully",
	"product.updated":      "Product updated successfully",
	"product.deleted":      "Product deleted successfully",
	"product.out_of_stock": "Product is out of stock",

	"category.not_found": "Category not found",
	"category.created":   "Category created successfully",

	"order.recorded":      "Order recorded",
	"order.missing_user":  "Missing userId",
	"order.missing_items": "Missing or empty items",

	"favorite.added":     "Product added to favorites",
	"favorite.removed":   "Favorite removed successfully",
	"favorite.duplicate": "Product already in favorites",
	"favorite.not_found": "Favorite not found",

	"notification.not_found": "Notification not found",
	"notification.all_read":  "All notifications marked as read",

	"file.upload_success": "Files uploaded successfully",
	"file.upload_failed":  "File upload failed",
}

var defaultChineseTraditional = map[string]string{
	"auth.required":       "需要登入",
	"auth.invalid_token":  "授權憑證無效",
	"auth.token_expired":  "授權憑證已過期",
	"admin.access_denied": "需要管理員權限",

	"validation.invalid": "%s 無效",

	"product.not_found":    "找不到商品",
	"product.created":      "商品建立成功",
	"product.updated":      "商品更新成功",
	"product.deleted":      "商品刪除成功",
	"product.out_of_stock": "商品已售完",

	"category.not_found": "找不到分類",
	"category.created":   "分類建立成功",

	"order.recorded":      "訂單已建立",
	"order.missing_user":  "缺少使用者識別碼",
	"order.missing_items": "購物車是空的",

	"favorite.added":     "已加入收藏",
	"favorite.removed":   "已移除收藏",
	"favorite.duplicate": "商品已在收藏清單中",
	"favorite.not_found": "找不到收藏",

	"notification.not_found": "找不到通知",
	"notification.all_read":  "所有通知已標記為已讀",

	"file.upload_success": "檔案上傳成功",
	"file.upload_failed":  "檔案上傳失敗",
}
