package application

import "context"

type statusService struct {
	repo StatusRepository
}

// NewStatusService はデータ登録状況の照会とリセットを担うサービスを返す。
func NewStatusService(repo StatusRepository) StatusService {
	return &statusService{repo: repo}
}

func (s *statusService) Status(ctx context.Context) (DataStatus, error) {
	stylists, err := s.repo.CountStylists(ctx)
	if err != nil {
		return DataStatus{}, err
	}
	reviews, err := s.repo.CountReviews(ctx)
	if err != nil {
		return DataStatus{}, err
	}
	images, err := s.repo.CountImages(ctx)
	if err != nil {
		return DataStatus{}, err
	}
	return DataStatus{
		StylistCount: stylists,
		ReviewCount:  reviews,
		ImageCount:   images,
	}, nil
}

// Reset は美容師・アンケート・画像・列マッピングの全コレクションを空にする。
// 取り消しはできないため、呼び出し側で確認を済ませてから呼ぶこと。
func (s *statusService) Reset(ctx context.Context) error {
	return s.repo.ClearAll(ctx)
}
