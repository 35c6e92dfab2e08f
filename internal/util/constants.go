package util

const (
	DateFormat = "2006-01-02"
	TimeFormat = "2006-01-02 15:04:05"
)

const (
	StorageLocal = "local"
	StorageMinio = "minio"
	StorageOSS   = "oss"
)

// 文件上传相关常量
const (
	MimeImage       = "image/"
	MimeOctetStream = "application/octet-stream"

	MaxPhotoSize   = 20 << 20
	ThumbnailWidth = 480
)

// 分页默认值
const (
	DefaultPage         = 1
	DefaultPageLimit    = 20
	DefaultMessageLimit = 6
	MaxPageLimit        = 100
	MaxPage             = 100000
)

// RoleAdmin 管理员角色
const RoleAdmin = "admin"

var (
	AllowedPhotoExtensions = []string{".jpg", ".jpeg", ".png", ".webp", ".gif"}
)
