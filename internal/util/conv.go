package util

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// MustParseUint 将字符串转换为无符号整数，解析失败时返回 0
func MustParseUint(s string) uint {
	id, _ := strconv.ParseUint(s, 10, 32)
	return uint(id)
}

// ParsePagination 解析分页参数，非法值回落到默认值
func ParsePagination(pageStr, limitStr string, defaultLimit int) (int, int) {
	page, err := strconv.Atoi(strings.TrimSpace(pageStr))
	if err != nil || page < 1 {
		page = DefaultPage
	}
	if page > MaxPage {
		page = MaxPage
	}

	limit, err := strconv.Atoi(strings.TrimSpace(limitStr))
	if err != nil || limit < 1 {
		limit = defaultLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	return page, limit
}

// PageBounds 返回切片分页的起止下标，页码越界时返回空区间
func PageBounds(total, page, limit int) (int, int) {
	if page < 1 || limit < 1 || total <= 0 {
		return 0, 0
	}
	if page-1 >= (total+limit-1)/limit {
		return total, total
	}
	start := (page - 1) * limit
	end := start + limit
	if end > total {
		end = total
	}
	return start, end
}

// PageOffset 数据库查询的偏移量
func PageOffset(page, limit int) int {
	if page < 1 {
		page = DefaultPage
	}
	if page > MaxPage {
		page = MaxPage
	}
	return (page - 1) * limit
}

// TotalPages 总页数
func TotalPages(total int64, limit int) int {
	if limit <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

// ParseHours 解析表格中的训练时长，允许带“小时”/“h”后缀
func ParseHours(s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "小时")
	s = strings.TrimSuffix(strings.ToLower(s), "h")
	h, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0, fmt.Errorf("hours must be a finite number: %q", s)
	}
	return h, nil
}
