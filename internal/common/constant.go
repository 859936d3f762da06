package common

// AuthorizationHeaderName is the HTTP header carrying the bearer access token.
const AuthorizationHeaderName = "Authorization"

// DefaultFolderColor is applied when a folder is created without a color.
const DefaultFolderColor = "#3B82F6"

// MaxFolderNameLength is the longest accepted folder name, after trimming.
const MaxFolderNameLength = 50
