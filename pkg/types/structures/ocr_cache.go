package structure

import "time"

// OCRCache는 정규화된 이미지 URL에 대한 OCR 결과 캐시 항목입니다
type OCRCache struct {
	ImageURL     string    `json:"imageURL" dynamodbav:"ImageURL"`
	TextDetected string    `json:"textDetected" dynamodbav:"TextDetected"`
	ImageType    string    `json:"imageType" dynamodbav:"ImageType"`
	CreatedAt    time.Time `json:"createdAt" dynamodbav:"CreatedAt"`
	ExpiresAt    time.Time `json:"expiresAt" dynamodbav:"ExpiresAt"`
}
