package extract

import "strings"

// countryEntry pairs a country label with its keyword variants (English
// names plus the Korean-language forms used by the monitored feeds).
type countryEntry struct {
	Label    string
	Keywords []string
}

// OtherCountry is the catch-all label when no table entry matches.
const OtherCountry = "Other"

// countryTable is scanned top to bottom; the first entry with any keyword
// hit wins, regardless of how many keywords later entries would match.
// The order is a product decision and must not be re-sorted. Short
// ambiguous codes ("eu ", "uk ", "u.s.") carry trailing padding or
// punctuation so they do not fire inside unrelated words.
var countryTable = []countryEntry{
	{"Ascension and Tristan da Cunha", []string{"ascension and tristan da cunha", "saint helena"}},
	{"EU", []string{"eu ", "european union", "유럽연합", "브뤼셀", "유럽"}},
	{"Ghana", []string{"ghana", "가나"}},
	{"Gabon", []string{"gabon", "가봉"}},
	{"Guyana", []string{"guyana", "가이아나"}},
	{"Gambia", []string{"gambia", "감비아"}},
	{"Guernsey", []string{"guernsey", "건지"}},
	{"Guadeloupe", []string{"guadeloupe", "과들루프"}},
	{"Guatemala", []string{"guatemala", "과테말라"}},
	{"Guam", []string{"guam", "괌"}},
	{"Grenada", []string{"grenada", "그레나다"}},
	{"Greece", []string{"greece", "그리스"}},
	{"Greenland", []string{"greenland", "그린란드"}},
	{"Global", []string{"global", "international", "글로벌", "국제"}},
	{"Guinea", []string{"guinea", "기니"}},
	{"Guinea-Bissau", []string{"guinea-bissau", "기니비사우"}},
	{"Namibia", []string{"namibia", "나미비아"}},
	{"Nauru", []string{"nauru", "나우루"}},
	{"Nigeria", []string{"nigeria", "나이지리아"}},
	{"South Sudan", []string{"south sudan", "남수단"}},
	{"South Africa", []string{"south africa", "남아프리카 공화국"}},
	{"Netherlands", []string{"netherlands", "네덜란드"}},
	{"Nepal", []string{"nepal", "네팔"}},
	{"Norway", []string{"norway", "노르웨이"}},
	{"Norfolk Island", []string{"norfolk island", "노퍽 섬"}},
	{"New Caledonia", []string{"new caledonia", "누벨칼레도니"}},
	{"New Zealand", []string{"new zealand", "뉴질랜드"}},
	{"Niue", []string{"niue", "니우에"}},
	{"Niger", []string{"niger", "니제르"}},
	{"Nicaragua", []string{"nicaragua", "니카라과"}},
	{"Taiwan", []string{"taiwan", "대만"}},
	{"South Korea", []string{"korea", "republic of korea", "south korea", "대한민국", "한국"}},
	{"Denmark", []string{"denmark", "덴마크"}},
	{"Dominica", []string{"dominica", "도미니카"}},
	{"Dominican Republic", []string{"dominican republic", "도미니카 공화국"}},
	{"Germany", []string{"germany", "독일", "베를린"}},
	{"Timor-Leste", []string{"timor-leste", "동티모르"}},
	{"Laos", []string{"laos", "라오스"}},
	{"Liberia", []string{"liberia", "라이베리아"}},
	{"Latvia", []string{"latvia", "라트비아"}},
	{"Russia", []string{"russia", "러시아"}},
	{"Lebanon", []string{"lebanon", "레바논"}},
	{"Lesotho", []string{"lesotho", "레소토"}},
	{"Réunion", []string{"réunion", "레위니옹"}},
	{"Romania", []string{"romania", "루마니아"}},
	{"Luxembourg", []string{"luxembourg", "룩셈부르크"}},
	{"Rwanda", []string{"rwanda", "르완다"}},
	{"Libya", []string{"libya", "리비아"}},
	{"Lithuania", []string{"lithuania", "리투아니아"}},
	{"Liechtenstein", []string{"liechtenstein", "리히텐슈타인"}},
	{"Madagascar", []string{"madagascar", "마다가스카르"}},
	{"Martinique", []string{"martinique", "마르티니크"}},
	{"Marshall Islands", []string{"marshall islands", "마셜 제도"}},
	{"Mayotte", []string{"mayotte", "마요트"}},
	{"Macau", []string{"macau", "마카오"}},
	{"Malawi", []string{"malawi", "말라위"}},
	{"Malaysia", []string{"malaysia", "말레이시아"}},
	{"Mali", []string{"mali", "말리"}},
	{"Isle of Man", []string{"isle of man", "맨 섬"}},
	{"Mexico", []string{"mexico", "멕시코"}},
	{"Monaco", []string{"monaco", "모나코"}},
	{"Morocco", []string{"morocco", "모로코"}},
	{"Mauritius", []string{"mauritius", "모리셔스"}},
	{"Mauritania", []string{"mauritania", "모리타니"}},
	{"Mozambique", []string{"mozambique", "모잠비크"}},
	{"Montenegro", []string{"montenegro", "몬테네그로"}},
	{"Montserrat", []string{"montserrat", "몬트세랫"}},
	{"Moldova", []string{"moldova", "몰도바"}},
	{"Maldives", []string{"maldives", "몰디브"}},
	{"Malta", []string{"malta", "몰타"}},
	{"Mongolia", []string{"mongolia", "몽골"}},
	{"United States", []string{"u.s.", "u.s.a", "united states", "usa", "미 연방", "미국"}},
	{"Myanmar", []string{"myanmar (burma)", "미얀마"}},
	{"Micronesia", []string{"micronesia", "미크로네시아"}},
	{"Vanuatu", []string{"vanuatu", "바누아투"}},
	{"Bahrain", []string{"bahrain", "바레인"}},
	{"Barbados", []string{"barbados", "바베이도스"}},
	{"Vatican City", []string{"vatican city (holy see)", "바티칸 시국"}},
	{"Bahamas", []string{"bahamas", "바하마"}},
	{"Bangladesh", []string{"bangladesh", "방글라데시"}},
	{"Bermuda", []string{"bermuda", "버뮤다"}},
	{"Benin", []string{"benin", "베냉"}},
	{"Venezuela", []string{"venezuela", "베네수엘라"}},
	{"Vietnam", []string{"vietnam", "베트남"}},
	{"Belgium", []string{"belgium", "벨기에"}},
	{"Belarus", []string{"belarus", "벨라루스"}},
	{"Belize", []string{"belize", "벨리즈"}},
	{"Bonaire", []string{"bonaire", "보네르"}},
	{"Bosnia and Herzegovina", []string{"bosnia and herzegovina", "보스니아 헤르체고비나"}},
	{"Botswana", []string{"botswana", "보츠와나"}},
	{"Bolivia", []string{"bolivia", "볼리비아"}},
	{"Burundi", []string{"burundi", "부룬디"}},
	{"Burkina Faso", []string{"burkina faso", "부르키나파소"}},
	{"Bouvet Island", []string{"bouvet island", "부베 섬"}},
	{"Bhutan", []string{"bhutan", "부탄"}},
	{"North Macedonia", []string{"north macedonia", "북마케도니아"}},
	{"North Korea", []string{"north korea", "북한"}},
	{"Bulgaria", []string{"bulgaria", "불가리아"}},
	{"Brazil", []string{"brazil", "브라질"}},
	{"Brunei", []string{"brunei darussalam", "브루나이"}},
	{"Samoa", []string{"samoa", "사모아"}},
	{"Saudi Arabia", []string{"saudi arabia", "사우디아라비아"}},
	{"San Marino", []string{"san marino", "산마리노"}},
	{"Sao Tome and Principe", []string{"sao tome and principe", "상투메 프린시페"}},
	{"Saint Martin", []string{"saint martin (french part)", "생마르탱"}},
	{"Saint Barthélemy", []string{"saint barthélemy", "생바르텔레미"}},
	{"Saint Pierre and Miquelon", []string{"saint pierre and miquelon", "생피에르 미클롱"}},
	{"Western Sahara", []string{"western sahara", "서사하라"}},
	{"Senegal", []string{"senegal", "세네갈"}},
	{"Serbia", []string{"serbia", "세르비아"}},
	{"Seychelles", []string{"seychelles", "세이셸"}},
	{"Saint Lucia", []string{"saint lucia", "세인트루시아"}},
	{"Saint Vincent and the Grenadines", []string{"saint vincent and the grenadines", "세인트빈센트 그레나딘"}},
	{"Saint Kitts and Nevis", []string{"saint kitts and nevis", "세인트키츠 네비스"}},
	{"Somalia", []string{"somalia", "소말리아"}},
	{"Solomon Islands", []string{"solomon islands", "솔로몬 제도"}},
	{"Sudan", []string{"sudan", "수단"}},
	{"Suriname", []string{"suriname", "수리남"}},
	{"Sri Lanka", []string{"sri lanka", "스리랑카"}},
	{"Sweden", []string{"sweden", "스웨덴"}},
	{"Switzerland", []string{"switzerland", "스위스"}},
	{"Spain", []string{"spain", "스페인"}},
	{"Slovakia", []string{"slovakia", "슬로바키아"}},
	{"Slovenia", []string{"slovenia", "슬로베니아"}},
	{"Syria", []string{"syria", "시리아"}},
	{"Sierra Leone", []string{"sierra leone", "시에라리온"}},
	{"Sint Maarten", []string{"sint maarten (dutch part)", "신트마르턴"}},
	{"Singapore", []string{"singapore", "싱가포르"}},
	{"United Arab Emirates", []string{"united arab emirates", "아랍에미리트"}},
	{"Aruba", []string{"aruba", "아루바"}},
	{"Armenia", []string{"armenia", "아르메니아"}},
	{"Argentina", []string{"argentina", "아르헨티나"}},
	{"American Samoa", []string{"american samoa", "아메리칸사모아"}},
	{"Iceland", []string{"iceland", "아이슬란드"}},
	{"Haiti", []string{"haiti", "아이티"}},
	{"Ireland", []string{"ireland", "아일랜드"}},
	{"Azerbaijan", []string{"azerbaijan", "아제르바이잔"}},
	{"Afghanistan", []string{"afghanistan", "아프가니스탄"}},
	{"Andorra", []string{"andorra", "안도라"}},
	{"Albania", []string{"albania", "알바니아"}},
	{"Algeria", []string{"algeria", "알제리"}},
	{"Angola", []string{"angola", "앙골라"}},
	{"Antigua and Barbuda", []string{"antigua and barbuda", "앤티가 바부다"}},
	{"Anguilla", []string{"anguilla", "앵귈라"}},
	{"Ascension Island", []string{"ascension island", "어센션 섬"}},
	{"Eritrea", []string{"eritrea", "에리트레아"}},
	{"Eswatini", []string{"eswatini", "에스와티니"}},
	{"Estonia", []string{"estonia", "에스토니아"}},
	{"Ecuador", []string{"ecuador", "에콰도르"}},
	{"Ethiopia", []string{"ethiopia", "에티오피아"}},
	{"El Salvador", []string{"el salvador", "엘살바도르"}},
	{"United Kingdom", []string{"uk ", "united kingdom", "런던", "영국"}},
	{"British Virgin Islands", []string{"british virgin islands", "영국령 버진아일랜드"}},
	{"British Indian Ocean Territory", []string{"british indian ocean territory", "영국령 인도양 식민지"}},
	{"Yemen", []string{"yemen", "예멘"}},
	{"Oman", []string{"oman", "오만"}},
	{"Australia", []string{"australia", "오스트레일리아"}},
	{"Austria", []string{"austria", "오스트리아"}},
	{"Honduras", []string{"honduras", "온두라스"}},
	{"Åland Islands", []string{"åland islands", "올란드 제도"}},
	{"Wallis and Futuna", []string{"wallis and futuna", "왈리스 푸투나"}},
	{"Jordan", []string{"jordan", "요르단"}},
	{"Uganda", []string{"uganda", "우간다"}},
	{"Uruguay", []string{"uruguay", "우루과이"}},
	{"Uzbekistan", []string{"uzbekistan", "우즈베키스탄"}},
	{"Ukraine", []string{"ukraine", "우크라이나"}},
	{"Iraq", []string{"iraq", "이라크"}},
	{"Iran", []string{"iran", "이란"}},
	{"Israel", []string{"israel", "이스라엘"}},
	{"Egypt", []string{"egypt", "이집트"}},
	{"Italy", []string{"italy", "이탈리아"}},
	{"India", []string{"india", "인도"}},
	{"Indonesia", []string{"indonesia", "인도네시아"}},
	{"Japan", []string{"japan", "도쿄", "일본"}},
	{"Jamaica", []string{"jamaica", "자메이카"}},
	{"Zambia", []string{"zambia", "잠비아"}},
	{"Jersey", []string{"jersey", "저지"}},
	{"Equatorial Guinea", []string{"equatorial guinea", "적도 기니"}},
	{"Georgia", []string{"georgia", "조지아"}},
	{"China", []string{"china", "베이징", "중국"}},
	{"Central African Republic", []string{"central african republic", "중앙아프리카 공화국"}},
	{"Djibouti", []string{"djibouti", "지부티"}},
	{"Gibraltar", []string{"gibraltar", "지브롤터"}},
	{"Zimbabwe", []string{"zimbabwe", "짐바브웨"}},
	{"Chad", []string{"chad", "차드"}},
	{"Czech Republic", []string{"czech republic", "체코"}},
	{"Chile", []string{"chile", "칠레"}},
	{"Cameroon", []string{"cameroon", "카메룬"}},
	{"Cape Verde", []string{"cape verde", "카보베르데"}},
	{"Kazakhstan", []string{"kazakhstan", "카자흐스탄"}},
	{"Qatar", []string{"qatar", "카타르"}},
	{"Cambodia", []string{"cambodia", "캄보디아"}},
	{"Canada", []string{"canada", "캐나다"}},
	{"Kenya", []string{"kenya", "케냐"}},
	{"Cayman Islands", []string{"cayman islands", "케이맨제도"}},
	{"Comoros", []string{"comoros", "코모로"}},
	{"Costa Rica", []string{"costa rica", "코스타리카"}},
	{"Cocos (Keeling) Islands", []string{"cocos (keeling) islands", "코코스 제도"}},
	{"Ivory Coast", []string{"ivory coast (côte d'ivoire)", "코트디부아르"}},
	{"Colombia", []string{"colombia", "콜롬비아"}},
	{"Congo (Republic)", []string{"congo (republic)", "콩고 공화국"}},
	{"Congo (DRC)", []string{"congo (democratic republic of)", "콩고 민주 공화국"}},
	{"Cuba", []string{"cuba", "쿠바"}},
	{"Kuwait", []string{"kuwait", "쿠웨이트"}},
	{"Cook Islands", []string{"cook islands", "쿡 제도"}},
	{"Curaçao", []string{"curaçao", "퀴라소"}},
	{"Croatia", []string{"croatia", "크로아티아"}},
	{"Christmas Island", []string{"christmas island", "크리스마스 섬"}},
	{"Kyrgyzstan", []string{"kyrgyzstan", "키르기스스탄"}},
	{"Kiribati", []string{"kiribati", "키리바시"}},
	{"Cyprus", []string{"cyprus", "키프로스"}},
	{"Tajikistan", []string{"tajikistan", "타지키스탄"}},
	{"Tanzania", []string{"tanzania", "탄자니아"}},
	{"Thailand", []string{"thailand", "태국"}},
	{"Turks and Caicos Islands", []string{"turks and caicos islands", "터크스 케이커스 제도"}},
	{"Togo", []string{"togo", "토고"}},
	{"Tokelau", []string{"tokelau", "토켈라우"}},
	{"Tonga", []string{"tonga", "통가"}},
	{"Turkmenistan", []string{"turkmenistan", "투르크메니스탄"}},
	{"Tuvalu", []string{"tuvalu", "투발루"}},
	{"Tunisia", []string{"tunisia", "튀니지"}},
	{"Turkey", []string{"turkey", "튀르키예"}},
	{"Trinidad and Tobago", []string{"trinidad and tobago", "트리니다드 토바고"}},
	{"Panama", []string{"panama", "파나마"}},
	{"Paraguay", []string{"paraguay", "파라과이"}},
	{"Pakistan", []string{"pakistan", "파키스탄"}},
	{"Papua New Guinea", []string{"papua new guinea", "파푸아뉴기니"}},
	{"Palau", []string{"palau", "팔라우"}},
	{"Palestine", []string{"palestine", "팔레스타인"}},
	{"Faroe Islands", []string{"faroe islands", "페로 제도"}},
	{"Peru", []string{"peru", "페루"}},
	{"Portugal", []string{"portugal", "포르투갈"}},
	{"Falkland Islands", []string{"falkland islands", "포클랜드 제도"}},
	{"Poland", []string{"poland", "폴란드"}},
	{"Puerto Rico", []string{"puerto rico", "푸에르토리코"}},
	{"France", []string{"france", "파리", "프랑스"}},
	{"French Guiana", []string{"french guiana", "프랑스령 기아나"}},
	{"French Polynesia", []string{"french polynesia", "프랑스령 폴리네시아"}},
	{"Fiji", []string{"fiji", "피지"}},
	{"Finland", []string{"finland", "핀란드"}},
	{"Philippines", []string{"philippines", "필리핀"}},
	{"Pitcairn Islands", []string{"pitcairn islands", "핏케언 제도"}},
	{"Hungary", []string{"hungary", "헝가리"}},
	{"Hong Kong", []string{"hong kong", "홍콩"}},
}

// Country infers the jurisdiction label from title and body text. First
// table entry with any substring hit wins; OtherCountry when none match.
func Country(text, title string) string {
	hay := strings.ToLower(title + " " + text)
	for _, entry := range countryTable {
		for _, k := range entry.Keywords {
			if strings.Contains(hay, k) {
				return entry.Label
			}
		}
	}
	return OtherCountry
}
