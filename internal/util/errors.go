package util

import "errors"

var (
	ErrMemberNotFound         = errors.New("队员不存在")
	ErrTrainingRecordNotFound = errors.New("训练记录不存在")
	ErrMessageNotFound        = errors.New("寄语不存在")
	ErrInvalidCategory        = errors.New("invalid category")
	ErrInvalidCredentials     = errors.New("用户名或密码错误")
	ErrInvalidTrainingRecord  = errors.New("invalid training record")
	ErrInvalidImport          = errors.New("invalid import data")
	ErrInvalidFileType        = errors.New("invalid file type")
	ErrFileTooLarge           = errors.New("file too large")
)
