package util

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// ImageInfo 图片尺寸
type ImageInfo struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Codec  string `json:"codec"`
}

// GetImageInfo 使用 ffprobe 读取图片尺寸
func GetImageInfo(imagePath string) (*ImageInfo, error) {
	if _, err := os.Stat(imagePath); err != nil {
		return nil, fmt.Errorf("图片文件不存在: %v", err)
	}

	jsonOutput, err := ffmpeg.Probe(imagePath)
	if err != nil {
		return nil, fmt.Errorf("获取图片信息失败: %v", err)
	}

	var result struct {
		Streams []struct {
			CodecType string `json:"codec_type"`
			CodecName string `json:"codec_name"`
			Width     int    `json:"width"`
			Height    int    `json:"height"`
		} `json:"streams"`
	}
	if err := json.Unmarshal([]byte(jsonOutput), &result); err != nil {
		return nil, fmt.Errorf("解析图片信息失败: %v", err)
	}

	for _, stream := range result.Streams {
		if stream.CodecType == "video" {
			return &ImageInfo{Width: stream.Width, Height: stream.Height, Codec: stream.CodecName}, nil
		}
	}
	return nil, fmt.Errorf("未找到图像流: %s", imagePath)
}

// GenerateImageThumbnail 按宽度等比缩放生成 JPEG 缩略图
func GenerateImageThumbnail(imagePath, thumbnailPath string, width int) error {
	if err := os.MkdirAll(filepath.Dir(thumbnailPath), 0755); err != nil {
		return fmt.Errorf("创建缩略图目录失败: %v", err)
	}

	return ffmpeg.Input(imagePath).
		Filter("scale", ffmpeg.Args{fmt.Sprintf("%d:-2", width)}).
		Output(thumbnailPath, ffmpeg.KwArgs{
			"vframes": "1",
			"q:v":     "3",
		}).
		OverWriteOutput().
		Run()
}

// GetFFmpegVersion 获取FFmpeg版本信息，用于检查FFmpeg是否正确安装
func GetFFmpegVersion() (string, error) {
	// ffmpeg-go 没有直接查询版本的接口
	cmd := exec.Command("ffmpeg", "-version", "-hide_banner")
	var out bytes.Buffer
	var errOut bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errOut

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("获取FFmpeg版本失败，请确保FFmpeg已正确安装: %v, %s", err, errOut.String())
	}

	return out.String(), nil
}
