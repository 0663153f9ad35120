package configs

import (
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// 앱 버전을 저장하는 전역 변수
var AppVersion string

type EnvConfig struct {
	Server struct {
		Port    string `env:"PORT" envDefault:"8080"`
		AppName string `env:"APP_NAME" envDefault:"NBSF-GO Service"`
	}
	AWS struct {
		AccessKeyID      string `env:"AWS_ACCESS_KEY_ID"`
		SecretAccessKey  string `env:"AWS_SECRET_ACCESS_KEY"`
		Region           string `env:"AWS_REGION" envDefault:"ap-northeast-2"`
		DynamoDBEndpoint string `env:"AWS_DYNAMODB_ENDPOINT"`
		Tables           struct {
			OCRCache string `env:"AWS_DYNAMODB_TABLE_OCR_CACHE" envDefault:"nbsf-ocr-cache"`
		}
	}
	Naver struct {
		ClientID     string `env:"NAVER_CLIENT_ID"`
		ClientSecret string `env:"NAVER_CLIENT_SECRET"`
		SearchURL    string `env:"NAVER_SEARCH_URL" envDefault:"https://openapi.naver.com/v1/search/blog.json"`
	}
	OCR struct {
		TempDir  string `env:"OCR_TEMP_DIR" envDefault:"/tmp"`
		CacheDir string `env:"OCR_CACHE_DIR" envDefault:"cache"`
	}
}

var (
	configInstance *EnvConfig
	once           sync.Once
)

// init 함수에서 VERSION 환경 변수 로드
func init() {
	AppVersion = os.Getenv("VERSION")
	if AppVersion == "" {
		AppVersion = "dev"
	}

	// 개발 환경일 경우 항상 "dev"로 설정
	if os.Getenv("APP_ENV") == "dev" {
		AppVersion = "dev"
	}
}

// loadConfig는 환경 변수를 로드하고 검증하는 내부 함수
func loadConfig() *EnvConfig {
	// .env 파일은 없을 수도 있음 (배포 환경은 실제 환경 변수 사용)
	_ = godotenv.Load()

	config := &EnvConfig{}
	if err := env.Parse(config); err != nil {
		log.Fatalf("환경 변수 파싱 실패: %v", err)
	}

	// 필수 환경 변수 확인
	if config.Naver.ClientID == "" || config.Naver.ClientSecret == "" {
		log.Fatalf("필수 환경 변수가 설정되지 않았습니다: NAVER_CLIENT_ID, NAVER_CLIENT_SECRET")
	}

	return config
}

// GetConfig는 EnvConfig의 싱글톤 인스턴스를 반환합니다.
// 처음 호출 시에만 환경 변수를 로드하고 이후 호출에서는 캐시된 인스턴스를 반환합니다.
func GetConfig() *EnvConfig {
	once.Do(func() {
		configInstance = loadConfig()
		fmt.Printf("환경 변수 로드 완료 (앱 버전: %s)\n", AppVersion)
	})
	return configInstance
}
