package levels

// Graded sentence pools, easiest first. Each pool carries a few more
// than ten sentences so every run gets a fresh sample.

func init() {
	Register(Level{
		ID:    "grade1",
		Title: "1급 · 짧은 문장",
		Items: []string{
			"안녕하세요",
			"고맙습니다",
			"학교에 갑니다",
			"밥을 먹어요",
			"물을 마셔요",
			"책을 읽어요",
			"친구를 만나요",
			"날씨가 좋아요",
			"노래를 불러요",
			"공부를 해요",
			"집에 가요",
			"잠을 자요",
		},
	})

	Register(Level{
		ID:    "grade2",
		Title: "2급 · 생활 문장",
		Items: []string{
			"오늘은 날씨가 참 맑습니다",
			"동생과 함께 시장에 갔습니다",
			"할머니께서 맛있는 떡을 주셨습니다",
			"아침에 일찍 일어나서 운동을 했습니다",
			"친구와 공원에서 자전거를 탔습니다",
			"저녁에 가족과 함께 밥을 먹었습니다",
			"도서관에서 재미있는 책을 빌렸습니다",
			"비가 와서 우산을 가지고 나갔습니다",
			"주말에 할아버지 댁에 놀러 갔습니다",
			"선생님께서 숙제를 내 주셨습니다",
			"버스를 타고 학교에 갑니다",
			"겨울에는 눈사람을 만듭니다",
		},
	})

	Register(Level{
		ID:    "grade3",
		Title: "3급 · 띄어쓰기 주의",
		Items: []string{
			"먹을 것을 가지고 소풍을 갔습니다",
			"할 수 있다는 마음가짐이 중요합니다",
			"어제 본 영화가 정말 재미있었습니다",
			"큰 소리로 책을 읽으면 기억에 오래 남습니다",
			"우리 반 친구들은 서로 도우며 지냅니다",
			"나뭇잎이 바람에 살랑살랑 흔들립니다",
			"시간이 날 때마다 일기를 쓰려고 합니다",
			"문을 열자마자 고소한 냄새가 났습니다",
			"약속 시간에 늦지 않도록 서둘러야 합니다",
			"낯선 곳에서도 길을 잘 찾을 수 있습니다",
			"땀을 흘린 만큼 좋은 결과가 있을 것입니다",
			"옛날 옛적에 마음씨 착한 나무꾼이 살았습니다",
		},
	})

	Register(Level{
		ID:    "grade4",
		Title: "4급 · 긴 문장",
		Items: []string{
			"가을 하늘은 높고 파랗게 펼쳐져 있으며 들판은 황금빛으로 물들어 갑니다",
			"도서관에서 빌린 책을 다 읽고 나서 느낀 점을 공책에 정리해 두었습니다",
			"갑자기 쏟아진 소나기에 사람들은 처마 밑으로 뛰어 들어가 비를 피했습니다",
			"꾸준히 연습하다 보면 어느새 실력이 부쩍 늘어 있는 자신을 발견하게 됩니다",
			"할머니께서 들려주시는 옛날이야기는 언제 들어도 새롭고 정겹게 느껴집니다",
			"이른 새벽 안개가 걷히자 멀리 있던 산봉우리가 또렷하게 모습을 드러냈습니다",
			"서로 다른 생각을 가진 사람들이 모여 의논하면 더 좋은 방법을 찾을 수 있습니다",
			"창밖으로 보이는 단풍잎이 하나둘 떨어지며 가을이 깊어 가고 있음을 알립니다",
			"어려운 이웃을 돕는 작은 손길이 모여 우리 마을을 더욱 따뜻하게 만듭니다",
			"실수를 두려워하지 말고 도전하는 용기야말로 배움의 가장 큰 밑거름입니다",
			"오랜만에 만난 친척들과 둘러앉아 나누는 이야기꽃은 밤늦도록 시들 줄 몰랐습니다",
			"정성껏 가꾼 텃밭에서 거둔 채소로 차린 밥상은 그 어떤 진수성찬보다 맛있습니다",
		},
	})
}
