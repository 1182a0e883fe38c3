package services

import (
	"log"
	"strings"
	"unicode/utf8"

	"github.com/sho11hei12-1998/Phone-Navi-App/entity"
	"github.com/sho11hei12-1998/Phone-Navi-App/repository"
	"github.com/sho11hei12-1998/Phone-Navi-App/utils"
)

// 検索結果1件分。事業者が未登録なら Business は nil。
type SearchResult struct {
	Phone    entity.PhoneNumber `json:"phone"`
	Business *entity.Business   `json:"business"`
}

// 電話番号・事業者を横断するキーワード検索。
// 結果は電話番号IDでマージされ、1番号につき1件になる。
type SearchService struct {
	phoneRepo    *repository.PhoneRepository
	businessRepo *repository.BusinessRepository
}

func NewSearchService(phoneRepo *repository.PhoneRepository, businessRepo *repository.BusinessRepository) *SearchService {
	return &SearchService{phoneRepo: phoneRepo, businessRepo: businessRepo}
}

// Search はフリーテキストを番号・事業者名・住所・業種で検索し、番号IDでマージした結果を返す。
// 結果の並びは発見順（番号一致 → 事業者一致）。部分クエリの失敗はログのみで続行する。
func (s *SearchService) Search(keyword string) []SearchResult {
	cleanKeyword := strings.TrimSpace(keyword)
	if cleanKeyword == "" {
		return []SearchResult{}
	}

	cleanNumber := utils.NormalizeNumber(cleanKeyword)
	isNumericOnly := utils.IsNumericOnly(cleanNumber)

	resultMap := make(map[uint]*SearchResult)
	order := make([]uint, 0)

	// 番号経路：数字のみ、または3文字以上なら番号として部分一致検索する
	if isNumericOnly || utf8.RuneCountInString(cleanNumber) >= 3 {
		phones, err := s.phoneRepo.SearchByNumber(cleanNumber, cleanKeyword)
		if err != nil {
			log.Printf("search: phone query failed: %v", err)
		} else {
			phoneIDs := make([]uint, 0, len(phones))
			for _, phone := range phones {
				if _, ok := resultMap[phone.ID]; ok {
					continue
				}
				resultMap[phone.ID] = &SearchResult{Phone: phone}
				order = append(order, phone.ID)
				phoneIDs = append(phoneIDs, phone.ID)
			}

			// 番号で見つかったものに事業者情報を付与
			if len(phoneIDs) > 0 {
				businesses, err := s.businessRepo.FindByPhoneIDs(phoneIDs)
				if err != nil {
					log.Printf("search: business attach failed: %v", err)
				} else {
					for i := range businesses {
						if r, ok := resultMap[businesses[i].PhoneNumberID]; ok {
							r.Business = &businesses[i]
						}
					}
				}
			}
		}
	}

	// 事業者経路：名前・住所・業種それぞれで検索し、事業者IDで重複排除しつつマージ
	businessSet := make(map[uint]bool)
	allBusinesses := make([]entity.Business, 0)
	for _, search := range []func(string) ([]entity.Business, error){
		s.businessRepo.SearchByName,
		s.businessRepo.SearchByAddress,
		s.businessRepo.SearchByIndustry,
	} {
		businesses, err := search(cleanKeyword)
		if err != nil {
			log.Printf("search: business query failed: %v", err)
			continue
		}
		for _, b := range businesses {
			if businessSet[b.ID] {
				continue
			}
			businessSet[b.ID] = true
			allBusinesses = append(allBusinesses, b)
		}
	}

	if len(allBusinesses) > 0 {
		phoneNumberIDs := make([]uint, 0, len(allBusinesses))
		businessByPhoneID := make(map[uint]*entity.Business, len(allBusinesses))
		for i := range allBusinesses {
			phoneNumberIDs = append(phoneNumberIDs, allBusinesses[i].PhoneNumberID)
			businessByPhoneID[allBusinesses[i].PhoneNumberID] = &allBusinesses[i]
		}

		phones, err := s.phoneRepo.FindByIDs(phoneNumberIDs)
		if err != nil {
			log.Printf("search: phone resolve failed: %v", err)
		} else {
			for _, phone := range phones {
				business := businessByPhoneID[phone.ID]
				if r, ok := resultMap[phone.ID]; ok {
					// 番号経路で既にある場合は事業者経路の情報で上書きする
					if business != nil {
						r.Business = business
					}
					continue
				}
				resultMap[phone.ID] = &SearchResult{Phone: phone, Business: business}
				order = append(order, phone.ID)
			}
		}
	}

	results := make([]SearchResult, 0, len(order))
	for _, id := range order {
		results = append(results, *resultMap[id])
	}
	return results
}
