package script

// Entry records the resolved rendering of one whole word in both scripts.
// Dictionary lookup always takes precedence over rule application: word-level
// context fixes the letters that are one-to-many between the scripts.
type Entry struct {
	Cyrillic string
	Arabic   string
}

// dictionaryEntries is the curated whole-word disambiguation list: common
// vocabulary, proper nouns and loanwords whose rule-based conversion would be
// ambiguous or wrong. Cyrillic forms are lowercase.
var dictionaryEntries = []Entry{
	{Cyrillic: "адам", Arabic: "ادام"},
	{Cyrillic: "аз", Arabic: "از"},
	{Cyrillic: "азамат", Arabic: "ازامات"},
	{Cyrillic: "азық", Arabic: "ازىق"},
	{Cyrillic: "ай", Arabic: "اي"},
	{Cyrillic: "айран", Arabic: "ايران"},
	{Cyrillic: "айту", Arabic: "ايتۋ"},
	{Cyrillic: "аласа", Arabic: "الاسا"},
	{Cyrillic: "алд", Arabic: "الد"},
	{Cyrillic: "алма", Arabic: "الما"},
	{Cyrillic: "алматы", Arabic: "الماتى"},
	{Cyrillic: "алмұрт", Arabic: "المۇرت"},
	{Cyrillic: "алпыс", Arabic: "الپىس"},
	{Cyrillic: "алты", Arabic: "التى"},
	{Cyrillic: "алу", Arabic: "الۋ"},
	{Cyrillic: "алыс", Arabic: "الىس"},
	{Cyrillic: "ана", Arabic: "انا"},
	{Cyrillic: "апару", Arabic: "اپارۋ"},
	{Cyrillic: "апта", Arabic: "اپتا"},
	{Cyrillic: "ара", Arabic: "ارا"},
	{Cyrillic: "арбакеш", Arabic: "ارباكەش"},
	{Cyrillic: "арзан", Arabic: "ارزان"},
	{Cyrillic: "арпа", Arabic: "ارپا"},
	{Cyrillic: "арт", Arabic: "ارت"},
	{Cyrillic: "арқа", Arabic: "ارقا"},
	{Cyrillic: "ас", Arabic: "اس"},
	{Cyrillic: "аспаз", Arabic: "اسپاز"},
	{Cyrillic: "аспан", Arabic: "اسپان"},
	{Cyrillic: "астана", Arabic: "استانا"},
	{Cyrillic: "ата", Arabic: "اتا"},
	{Cyrillic: "ауа", Arabic: "اۋا"},
	{Cyrillic: "аудармашы", Arabic: "اۋدارماشى"},
	{Cyrillic: "ауыз", Arabic: "اۋىز"},
	{Cyrillic: "ауыл", Arabic: "اۋىل"},
	{Cyrillic: "ауыр", Arabic: "اۋىر"},
	{Cyrillic: "ашу", Arabic: "اشۋ"},
	{Cyrillic: "ашық", Arabic: "اشىق"},
	{Cyrillic: "ащы", Arabic: "اششى"},
	{Cyrillic: "аю", Arabic: "ايۋ"},
	{Cyrillic: "аяқ", Arabic: "اياق"},
	{Cyrillic: "аға", Arabic: "اعا"},
	{Cyrillic: "ағаш", Arabic: "اعاش"},
	{Cyrillic: "ақ", Arabic: "اق"},
	{Cyrillic: "ақпан", Arabic: "اقپان"},
	{Cyrillic: "ақша", Arabic: "اقشا"},
	{Cyrillic: "ақылды", Arabic: "اقىلدى"},
	{Cyrillic: "ақын", Arabic: "اقىن"},
	{Cyrillic: "аңшылық", Arabic: "اڭشىلىق"},
	{Cyrillic: "базар", Arabic: "بازار"},
	{Cyrillic: "бай", Arabic: "باي"},
	{Cyrillic: "бал", Arabic: "بال"},
	{Cyrillic: "бала", Arabic: "بالا"},
	{Cyrillic: "балық", Arabic: "بالىق"},
	{Cyrillic: "балықтар", Arabic: "بالىقتار"},
	{Cyrillic: "балықшылық", Arabic: "بالىقشىلىق"},
	{Cyrillic: "банк", Arabic: "بانك"},
	{Cyrillic: "барлық", Arabic: "بارلىق"},
	{Cyrillic: "бару", Arabic: "بارۋ"},
	{Cyrillic: "бас", Arabic: "باس"},
	{Cyrillic: "баспасөз", Arabic: "باسپاسوز"},
	{Cyrillic: "бастау", Arabic: "باستاۋ"},
	{Cyrillic: "бауыр", Arabic: "باۋىر"},
	{Cyrillic: "баяу", Arabic: "باياۋ"},
	{Cyrillic: "бейсенбі", Arabic: "بەيسەنبى"},
	{Cyrillic: "беру", Arabic: "بەرۋ"},
	{Cyrillic: "бес", Arabic: "بەس"},
	{Cyrillic: "бет", Arabic: "بەت"},
	{Cyrillic: "би", Arabic: "بىي"},
	{Cyrillic: "бидай", Arabic: "بىيداي"},
	{Cyrillic: "биші", Arabic: "ٴبىيشى"},
	{Cyrillic: "биік", Arabic: "بىيىك"},
	{Cyrillic: "бюджет", Arabic: "بۋدجەت"},
	{Cyrillic: "біз", Arabic: "ٴبىز"},
	{Cyrillic: "біздің", Arabic: "ٴبىزدىڭ"},
	{Cyrillic: "білу", Arabic: "ٴبىلۋ"},
	{Cyrillic: "білім", Arabic: "ٴبىلىم"},
	{Cyrillic: "бір", Arabic: "ٴبىر"},
	{Cyrillic: "біраз", Arabic: "ٴبىراز"},
	{Cyrillic: "бірақ", Arabic: "بىراق"},
	{Cyrillic: "бірге", Arabic: "بىرگە"},
	{Cyrillic: "бірнеше", Arabic: "بىرنەشە"},
	{Cyrillic: "бітіру", Arabic: "ٴبىتىرۋ"},
	{Cyrillic: "бүгін", Arabic: "بۇگىن"},
	{Cyrillic: "бүркіт", Arabic: "بۇركىت"},
	{Cyrillic: "бұл", Arabic: "بۇل"},
	{Cyrillic: "бұлт", Arabic: "بۇلت"},
	{Cyrillic: "бұрын", Arabic: "بۇرىن"},
	{Cyrillic: "бұрыс", Arabic: "بۇرىس"},
	{Cyrillic: "бәрі", Arabic: "ٴبارى"},
	{Cyrillic: "бәрібір", Arabic: "ٴبارىبىر"},
	{Cyrillic: "бөлек", Arabic: "بولەك"},
	{Cyrillic: "бөлме", Arabic: "بولمە"},
	{Cyrillic: "ван", Arabic: "ۋاڭ"},
	{Cyrillic: "ван хунин", Arabic: "ۋاڭ حۋنيڭ"},
	{Cyrillic: "гүл", Arabic: "گۇل"},
	{Cyrillic: "дала", Arabic: "دالا"},
	{Cyrillic: "дамудың", Arabic: "دامۋدىڭ"},
	{Cyrillic: "дастархан", Arabic: "داستارحان"},
	{Cyrillic: "депутат", Arabic: "دەپۋتات"},
	{Cyrillic: "диагноз", Arabic: "دىياگنوز"},
	{Cyrillic: "дин", Arabic: "ديڭ"},
	{Cyrillic: "дин сюэсян", Arabic: "ديڭ شۋەشياڭ"},
	{Cyrillic: "диқан", Arabic: "دىيقان"},
	{Cyrillic: "домбыра", Arabic: "دومبىرا"},
	{Cyrillic: "доп", Arabic: "دوپ"},
	{Cyrillic: "дос", Arabic: "دوس"},
	{Cyrillic: "дүйсенбі", Arabic: "دۇيسەنبى"},
	{Cyrillic: "дүкен", Arabic: "دۇكەن"},
	{Cyrillic: "дұрыс", Arabic: "دۇرىس"},
	{Cyrillic: "дәмді", Arabic: "ٴدامدى"},
	{Cyrillic: "дән", Arabic: "ٴدان"},
	{Cyrillic: "дәптер", Arabic: "داپتەر"},
	{Cyrillic: "дәрігер", Arabic: "دارىگەر"},
	{Cyrillic: "дәріхана", Arabic: "دارىحانا"},
	{Cyrillic: "егер", Arabic: "ەگەر"},
	{Cyrillic: "еден", Arabic: "ەدەن"},
	{Cyrillic: "екі", Arabic: "ەكى"},
	{Cyrillic: "ел", Arabic: "ەل"},
	{Cyrillic: "елтаңба", Arabic: "ەلتاڭبا"},
	{Cyrillic: "елу", Arabic: "ەلۋ"},
	{Cyrillic: "емхана", Arabic: "ەمحانا"},
	{Cyrillic: "енді", Arabic: "ەندى"},
	{Cyrillic: "еркек", Arabic: "ەركەك"},
	{Cyrillic: "ертең", Arabic: "ەرتەڭ"},
	{Cyrillic: "есеп", Arabic: "ەسەپ"},
	{Cyrillic: "ескі", Arabic: "ەسكى"},
	{Cyrillic: "есте", Arabic: "ەستە"},
	{Cyrillic: "есту", Arabic: "ەستۋ"},
	{Cyrillic: "есік", Arabic: "ەسىك"},
	{Cyrillic: "ет", Arabic: "ەت"},
	{Cyrillic: "етікші", Arabic: "ەتىكشى"},
	{Cyrillic: "ешкі", Arabic: "ەشكى"},
	{Cyrillic: "ешкім", Arabic: "ەشكىم"},
	{Cyrillic: "ештеңе", Arabic: "ەشتەڭە"},
	{Cyrillic: "ешқашан", Arabic: "ەشقاشان"},
	{Cyrillic: "еңбекқор", Arabic: "ەڭبەكقور"},
	{Cyrillic: "еңбекқор-адам", Arabic: "ەڭبەكقور-ادام"},
	{Cyrillic: "жабу", Arabic: "جابۋ"},
	{Cyrillic: "жабық", Arabic: "جابىق"},
	{Cyrillic: "жаз", Arabic: "جاز"},
	{Cyrillic: "жазу", Arabic: "جازۋ"},
	{Cyrillic: "жазушы", Arabic: "جازۋشى"},
	{Cyrillic: "жалқау", Arabic: "جالقاۋ"},
	{Cyrillic: "жаман", Arabic: "جامان"},
	{Cyrillic: "жапырақ", Arabic: "جاپىراق"},
	{Cyrillic: "жас", Arabic: "جاس"},
	{Cyrillic: "жастық", Arabic: "جاستىق"},
	{Cyrillic: "жасыл", Arabic: "جاسىل"},
	{Cyrillic: "жату", Arabic: "جاتۋ"},
	{Cyrillic: "жауап", Arabic: "جاۋاپ"},
	{Cyrillic: "жауынгер", Arabic: "جاۋىنگەر"},
	{Cyrillic: "жағрафия", Arabic: "جاعرافىيا"},
	{Cyrillic: "жақсы", Arabic: "جاقسى"},
	{Cyrillic: "жақын", Arabic: "جاقىن"},
	{Cyrillic: "жаңа", Arabic: "جاڭا"},
	{Cyrillic: "жаңбыр", Arabic: "جاڭبىر"},
	{Cyrillic: "жексенбі", Arabic: "جەكسەنبى"},
	{Cyrillic: "жел", Arabic: "جەل"},
	{Cyrillic: "желтоқсан", Arabic: "جەلتوقسان"},
	{Cyrillic: "жеміс", Arabic: "جەمىس"},
	{Cyrillic: "жер", Arabic: "جەر"},
	{Cyrillic: "жетпіс", Arabic: "جەتپىس"},
	{Cyrillic: "жеті", Arabic: "جەتى"},
	{Cyrillic: "жеу", Arabic: "جەۋ"},
	{Cyrillic: "жеңіл", Arabic: "جەڭىل"},
	{Cyrillic: "жиен", Arabic: "جىيەن"},
	{Cyrillic: "жиырма", Arabic: "جىيىرما"},
	{Cyrillic: "жиі", Arabic: "ٴجىيى"},
	{Cyrillic: "жол", Arabic: "جول"},
	{Cyrillic: "жоғалту", Arabic: "جوعالتۋ"},
	{Cyrillic: "жоғары", Arabic: "جوعارى"},
	{Cyrillic: "жоқ", Arabic: "جوق"},
	{Cyrillic: "жыл", Arabic: "جىل"},
	{Cyrillic: "жылан", Arabic: "جىلان"},
	{Cyrillic: "жылдам", Arabic: "جىلدام"},
	{Cyrillic: "жылы", Arabic: "جىلى"},
	{Cyrillic: "жылқы", Arabic: "جىلقى"},
	{Cyrillic: "жылқышы", Arabic: "جىلقىشى"},
	{Cyrillic: "жіберу", Arabic: "جىبەرۋ"},
	{Cyrillic: "жігіт", Arabic: "جىگىت"},
	{Cyrillic: "жүгіру", Arabic: "جۇگىرۋ"},
	{Cyrillic: "жүз", Arabic: "ٴجۇز"},
	{Cyrillic: "жүзу", Arabic: "ٴجۇزۋ"},
	{Cyrillic: "жүзім", Arabic: "ٴجۇزىم"},
	{Cyrillic: "жүргізуші", Arabic: "جۇرگىزۋشى"},
	{Cyrillic: "жүрек", Arabic: "جۇرەك"},
	{Cyrillic: "жұма", Arabic: "جۇما"},
	{Cyrillic: "жұмсақ", Arabic: "جۇمساق"},
	{Cyrillic: "жұмыртқа", Arabic: "جۇمىرتقا"},
	{Cyrillic: "жұмыс", Arabic: "جۇمىس"},
	{Cyrillic: "жұрт", Arabic: "جۇرت"},
	{Cyrillic: "жұқа", Arabic: "جۇقا"},
	{Cyrillic: "жұңго", Arabic: "جۇڭگو"},
	{Cyrillic: "және", Arabic: "جانە"},
	{Cyrillic: "заң", Arabic: "زاڭ"},
	{Cyrillic: "заңгер", Arabic: "زاڭگەر"},
	{Cyrillic: "инженер", Arabic: "ىينجەنەر"},
	{Cyrillic: "ит", Arabic: "ٴىيت"},
	{Cyrillic: "иық", Arabic: "ٴىيىق"},
	{Cyrillic: "иә", Arabic: "ىيا"},
	{Cyrillic: "картоп", Arabic: "كارتوپ"},
	{Cyrillic: "кедей", Arabic: "كەدەي"},
	{Cyrillic: "кейде", Arabic: "كەيدە"},
	{Cyrillic: "кейін", Arabic: "كەيىن"},
	{Cyrillic: "келу", Arabic: "كەلۋ"},
	{Cyrillic: "келін", Arabic: "كەلىن"},
	{Cyrillic: "кесе", Arabic: "كەسە"},
	{Cyrillic: "кету", Arabic: "كەتۋ"},
	{Cyrillic: "кеуде", Arabic: "كەۋدە"},
	{Cyrillic: "кеш", Arabic: "كەش"},
	{Cyrillic: "кеше", Arabic: "كەشە"},
	{Cyrillic: "кешке", Arabic: "كەشكە"},
	{Cyrillic: "кешіріңіз", Arabic: "كەشىرىڭىز"},
	{Cyrillic: "кең", Arabic: "كەڭ"},
	{Cyrillic: "кино", Arabic: "كىينو"},
	{Cyrillic: "куәлік", Arabic: "كۋالىك"},
	{Cyrillic: "кілем", Arabic: "كىلەم"},
	{Cyrillic: "кілт", Arabic: "كىلت"},
	{Cyrillic: "кілті", Arabic: "كىلتى"},
	{Cyrillic: "кім", Arabic: "كىم"},
	{Cyrillic: "кіру", Arabic: "كىرۋ"},
	{Cyrillic: "кісі", Arabic: "كىسى"},
	{Cyrillic: "кітап", Arabic: "كىتاپ"},
	{Cyrillic: "кіші", Arabic: "كىشى"},
	{Cyrillic: "күз", Arabic: "كۇز"},
	{Cyrillic: "күй", Arabic: "كۇي"},
	{Cyrillic: "күйеу", Arabic: "كۇيەۋ"},
	{Cyrillic: "күлгін", Arabic: "كۇلگىن"},
	{Cyrillic: "күн", Arabic: "كۇن"},
	{Cyrillic: "күрес", Arabic: "كۇرەس"},
	{Cyrillic: "күту", Arabic: "كۇتۋ"},
	{Cyrillic: "кәрі", Arabic: "كارى"},
	{Cyrillic: "кәсіп", Arabic: "كاسىپ"},
	{Cyrillic: "көбелек", Arabic: "كوبەلەك"},
	{Cyrillic: "көгершін", Arabic: "كوگەرشىن"},
	{Cyrillic: "көз", Arabic: "كوز"},
	{Cyrillic: "көк", Arabic: "كوك"},
	{Cyrillic: "көктем", Arabic: "كوكتەم"},
	{Cyrillic: "көл", Arabic: "كول"},
	{Cyrillic: "көмектесу", Arabic: "كومەكتەسۋ"},
	{Cyrillic: "көп", Arabic: "كوپ"},
	{Cyrillic: "көпір", Arabic: "كوپىر"},
	{Cyrillic: "көркем", Arabic: "كوركەم"},
	{Cyrillic: "көрпе", Arabic: "كورپە"},
	{Cyrillic: "көру", Arabic: "كورۋ"},
	{Cyrillic: "көрші", Arabic: "كورشى"},
	{Cyrillic: "көрікті", Arabic: "كورىكتى"},
	{Cyrillic: "көтеру", Arabic: "كوتەرۋ"},
	{Cyrillic: "көше", Arabic: "كوشە"},
	{Cyrillic: "лас", Arabic: "لاس"},
	{Cyrillic: "ли", Arabic: "لي"},
	{Cyrillic: "ли си", Arabic: "لي شي"},
	{Cyrillic: "ли цян", Arabic: "لي چياڭ"},
	{Cyrillic: "лэцзи", Arabic: "لىجي"},
	{Cyrillic: "май", Arabic: "ماي"},
	{Cyrillic: "малшы", Arabic: "مالشى"},
	{Cyrillic: "мамандық", Arabic: "ماماندىق"},
	{Cyrillic: "мамыр", Arabic: "مامىر"},
	{Cyrillic: "маусым", Arabic: "ماۋسىم"},
	{Cyrillic: "маңдай", Arabic: "ماڭداي"},
	{Cyrillic: "маңызды", Arabic: "ماڭىزدى"},
	{Cyrillic: "мезгіл", Arabic: "مەزگىل"},
	{Cyrillic: "мейірбике", Arabic: "مەيىربىيكە"},
	{Cyrillic: "мектеп", Arabic: "مەكتەپ"},
	{Cyrillic: "мемлекет", Arabic: "مەملەكەت"},
	{Cyrillic: "мен", Arabic: "مەن"},
	{Cyrillic: "министр", Arabic: "مىينىيستر"},
	{Cyrillic: "минут", Arabic: "مىينۋت"},
	{Cyrillic: "мойын", Arabic: "مويىن"},
	{Cyrillic: "музыка", Arabic: "مۋزىكا"},
	{Cyrillic: "мынау", Arabic: "مىناۋ"},
	{Cyrillic: "мысық", Arabic: "مىسىق"},
	{Cyrillic: "мықты", Arabic: "مىقتى"},
	{Cyrillic: "мың", Arabic: "مىڭ"},
	{Cyrillic: "мұз", Arabic: "مۇز"},
	{Cyrillic: "мұрын", Arabic: "مۇرىن"},
	{Cyrillic: "мұғалім", Arabic: "مۇعالىم"},
	{Cyrillic: "нан", Arabic: "نان"},
	{Cyrillic: "наубайшы", Arabic: "ناۋبايشى"},
	{Cyrillic: "наурыз", Arabic: "ناۋرىز"},
	{Cyrillic: "не", Arabic: "نە"},
	{Cyrillic: "неге", Arabic: "نەگە"},
	{Cyrillic: "немере", Arabic: "نەمەرە"},
	{Cyrillic: "немесе", Arabic: "نەمەسە"},
	{Cyrillic: "несие", Arabic: "نەسىيە"},
	{Cyrillic: "нью-йорк", Arabic: "نىيۋ-يورك"},
	{Cyrillic: "ойлау", Arabic: "ويلاۋ"},
	{Cyrillic: "ойын", Arabic: "ويىن"},
	{Cyrillic: "ол", Arabic: "ول"},
	{Cyrillic: "олар", Arabic: "ولار"},
	{Cyrillic: "он", Arabic: "ون"},
	{Cyrillic: "орман", Arabic: "ورمان"},
	{Cyrillic: "орта", Arabic: "ورتا"},
	{Cyrillic: "орталық комитет", Arabic: "ورتالىق كوميتەت"},
	{Cyrillic: "орындық", Arabic: "ورىندىق"},
	{Cyrillic: "осы", Arabic: "وسى"},
	{Cyrillic: "от", Arabic: "وت"},
	{Cyrillic: "отанымыз", Arabic: "وتانىمىز"},
	{Cyrillic: "отбасы", Arabic: "وتباسى"},
	{Cyrillic: "отыз", Arabic: "وتىز"},
	{Cyrillic: "отыру", Arabic: "وتىرۋ"},
	{Cyrillic: "офицер", Arabic: "وفىيتسەر"},
	{Cyrillic: "ошақ", Arabic: "وشاق"},
	{Cyrillic: "ояну", Arabic: "ويانۋ"},
	{Cyrillic: "оқу", Arabic: "وقۋ"},
	{Cyrillic: "оқушы", Arabic: "وقۋشى"},
	{Cyrillic: "оң", Arabic: "وڭ"},
	{Cyrillic: "оңай", Arabic: "وڭاي"},
	{Cyrillic: "пайда", Arabic: "پايدا"},
	{Cyrillic: "пекин", Arabic: "بەيجيڭ"},
	{Cyrillic: "пияз", Arabic: "پىياز"},
	{Cyrillic: "полиция", Arabic: "پولىيتسىيا"},
	{Cyrillic: "президент", Arabic: "پرەزىيدەنت"},
	{Cyrillic: "пышақ", Arabic: "پىشاق"},
	{Cyrillic: "рақмет", Arabic: "راقمەت"},
	{Cyrillic: "сабақ", Arabic: "ساباق"},
	{Cyrillic: "сайлау", Arabic: "سايلاۋ"},
	{Cyrillic: "салу", Arabic: "سالۋ"},
	{Cyrillic: "салық", Arabic: "سالىق"},
	{Cyrillic: "салқын", Arabic: "سالقىن"},
	{Cyrillic: "сан", Arabic: "سان"},
	{Cyrillic: "санау", Arabic: "ساناۋ"},
	{Cyrillic: "сары", Arabic: "سارى"},
	{Cyrillic: "саудагер", Arabic: "ساۋداگەر"},
	{Cyrillic: "саусақ", Arabic: "ساۋساق"},
	{Cyrillic: "сағат", Arabic: "ساعات"},
	{Cyrillic: "сақтау", Arabic: "ساقتاۋ"},
	{Cyrillic: "себебі", Arabic: "سەبەبى"},
	{Cyrillic: "сегіз", Arabic: "سەگىز"},
	{Cyrillic: "сейсенбі", Arabic: "سەيسەنبى"},
	{Cyrillic: "сексен", Arabic: "سەكسەن"},
	{Cyrillic: "сен", Arabic: "سەن"},
	{Cyrillic: "сенбі", Arabic: "سەنبى"},
	{Cyrillic: "сендер", Arabic: "سەندەر"},
	{Cyrillic: "си", Arabic: "شي"},
	{Cyrillic: "си цзиньпин", Arabic: "شي جينپيڭ"},
	{Cyrillic: "сирек", Arabic: "سىيرەك"},
	{Cyrillic: "сиыр", Arabic: "سىيىر"},
	{Cyrillic: "сияз", Arabic: "سىيەز"},
	{Cyrillic: "сол", Arabic: "سول"},
	{Cyrillic: "сол-жақ", Arabic: "سول-جاق"},
	{Cyrillic: "сондықтан", Arabic: "سوندىقتان"},
	{Cyrillic: "сот", Arabic: "سوت"},
	{Cyrillic: "спорт", Arabic: "سپورت"},
	{Cyrillic: "студент", Arabic: "ستۋدەنت"},
	{Cyrillic: "су", Arabic: "سۋ"},
	{Cyrillic: "сурет", Arabic: "سۋرەت"},
	{Cyrillic: "суретші", Arabic: "سۋرەتشى"},
	{Cyrillic: "сусын", Arabic: "سۋسىن"},
	{Cyrillic: "суық", Arabic: "سۋىق"},
	{Cyrillic: "сырт", Arabic: "سىرت"},
	{Cyrillic: "сюэсян", Arabic: "شۋەشياڭ"},
	{Cyrillic: "сіз", Arabic: "ٴسىز"},
	{Cyrillic: "сіздер", Arabic: "سىزدەر"},
	{Cyrillic: "сіңлі", Arabic: "ٴسىڭلى"},
	{Cyrillic: "сүт", Arabic: "ٴسۇت"},
	{Cyrillic: "сұлу", Arabic: "سۇلۋ"},
	{Cyrillic: "сұр", Arabic: "سۇر"},
	{Cyrillic: "сұрау", Arabic: "سۇراۋ"},
	{Cyrillic: "сәбіз", Arabic: "ٴسابىز"},
	{Cyrillic: "сәлем", Arabic: "سالەم"},
	{Cyrillic: "сәлеметсіз", Arabic: "سالەمەتسىز"},
	{Cyrillic: "сәрсенбі", Arabic: "سارسەنبى"},
	{Cyrillic: "сәуір", Arabic: "ٴساۋىر"},
	{Cyrillic: "сөз", Arabic: "ٴسوز"},
	{Cyrillic: "сөздік", Arabic: "سوزدىك"},
	{Cyrillic: "сөйлеу", Arabic: "سويلەۋ"},
	{Cyrillic: "сөндіруші", Arabic: "ٴسوندىرۋشى"},
	{Cyrillic: "табақ", Arabic: "تاباق"},
	{Cyrillic: "табу", Arabic: "تابۋ"},
	{Cyrillic: "таза", Arabic: "تازا"},
	{Cyrillic: "талапкер", Arabic: "تالاپكەر"},
	{Cyrillic: "тамақ", Arabic: "تاماق"},
	{Cyrillic: "тамыз", Arabic: "تامىز"},
	{Cyrillic: "тамыр", Arabic: "تامىر"},
	{Cyrillic: "тар", Arabic: "تار"},
	{Cyrillic: "тарих", Arabic: "تارىيح"},
	{Cyrillic: "тары", Arabic: "تارى"},
	{Cyrillic: "тас", Arabic: "تاس"},
	{Cyrillic: "тау", Arabic: "تاۋ"},
	{Cyrillic: "тауық", Arabic: "تاۋىق"},
	{Cyrillic: "тағы", Arabic: "تاعى"},
	{Cyrillic: "таң", Arabic: "تاڭ"},
	{Cyrillic: "таңертең", Arabic: "تاڭەرتەڭ"},
	{Cyrillic: "театр", Arabic: "تەاتر"},
	{Cyrillic: "тек", Arabic: "تەك"},
	{Cyrillic: "терезе", Arabic: "تەرەزە"},
	{Cyrillic: "теңге", Arabic: "تەڭگە"},
	{Cyrillic: "теңіз", Arabic: "تەڭىز"},
	{Cyrillic: "теңізші", Arabic: "تەڭىزشى"},
	{Cyrillic: "тиісінше", Arabic: "تىيىسىنشە"},
	{Cyrillic: "токио", Arabic: "توكىيو"},
	{Cyrillic: "топырақ", Arabic: "توپىراق"},
	{Cyrillic: "торғай", Arabic: "تورعاي"},
	{Cyrillic: "тоғыз", Arabic: "توعىز"},
	{Cyrillic: "тоқсан", Arabic: "توقسان"},
	{Cyrillic: "ту", Arabic: "تۋ"},
	{Cyrillic: "туыс", Arabic: "تۋىس"},
	{Cyrillic: "тышқан", Arabic: "تىشقان"},
	{Cyrillic: "тыңдау", Arabic: "تىڭداۋ"},
	{Cyrillic: "тігінші", Arabic: "تىگىنشى"},
	{Cyrillic: "тізе", Arabic: "تىزە"},
	{Cyrillic: "тіл", Arabic: "ٴتىل"},
	{Cyrillic: "тіс", Arabic: "ٴتىس"},
	{Cyrillic: "түйе", Arabic: "تۇيە"},
	{Cyrillic: "түлкі", Arabic: "تۇلكى"},
	{Cyrillic: "түн", Arabic: "ٴتۇن"},
	{Cyrillic: "түс", Arabic: "ٴتۇس"},
	{Cyrillic: "түсіну", Arabic: "ٴتۇسىنۋ"},
	{Cyrillic: "түсіру", Arabic: "ٴتۇسىرۋ"},
	{Cyrillic: "тұз", Arabic: "تۇز"},
	{Cyrillic: "тұру", Arabic: "تۇرۋ"},
	{Cyrillic: "тәтті", Arabic: "ٴتاتتى"},
	{Cyrillic: "төбе", Arabic: "توبە"},
	{Cyrillic: "төмен", Arabic: "تومەن"},
	{Cyrillic: "төрт", Arabic: "ٴتورت"},
	{Cyrillic: "төсек", Arabic: "توسەك"},
	{Cyrillic: "уақыт", Arabic: "ۋاقىت"},
	{Cyrillic: "халық", Arabic: "حالىق"},
	{Cyrillic: "хат", Arabic: "حات"},
	{Cyrillic: "хатшы", Arabic: "حاتشى"},
	{Cyrillic: "хауыз", Arabic: "حاۋىز"},
	{Cyrillic: "хунин", Arabic: "حۋنيڭ"},
	{Cyrillic: "цай", Arabic: "ساي"},
	{Cyrillic: "цай ци", Arabic: "ساي چي"},
	{Cyrillic: "цзиньпин", Arabic: "جينپيڭ"},
	{Cyrillic: "ци", Arabic: "چي"},
	{Cyrillic: "цян", Arabic: "چياڭ"},
	{Cyrillic: "чанцзян", Arabic: "چاڭجياڭ"},
	{Cyrillic: "чанцзянның", Arabic: "چاڭجياڭنىڭ"},
	{Cyrillic: "чжао", Arabic: "جاۋ"},
	{Cyrillic: "чжао лэцзи", Arabic: "جاۋ لىجي"},
	{Cyrillic: "шай", Arabic: "شاي"},
	{Cyrillic: "шам", Arabic: "شام"},
	{Cyrillic: "шанышқы", Arabic: "شانىشقى"},
	{Cyrillic: "шаш", Arabic: "شاش"},
	{Cyrillic: "шекара", Arabic: "شەكارا"},
	{Cyrillic: "шет", Arabic: "شەت"},
	{Cyrillic: "шеше", Arabic: "شەشە"},
	{Cyrillic: "шопан", Arabic: "شوپان"},
	{Cyrillic: "шужи", Arabic: "شۋجي"},
	{Cyrillic: "шыбын", Arabic: "شىبىن"},
	{Cyrillic: "шымкент", Arabic: "شىمكەنت"},
	{Cyrillic: "шығу", Arabic: "شىعۋ"},
	{Cyrillic: "шығын", Arabic: "شىعىن"},
	{Cyrillic: "шілде", Arabic: "شىلدە"},
	{Cyrillic: "шәйнек", Arabic: "شاينەك"},
	{Cyrillic: "шөп", Arabic: "ٴشوپ"},
	{Cyrillic: "ылғал", Arabic: "ىلعال"},
	{Cyrillic: "ыстық", Arabic: "ىستىق"},
	{Cyrillic: "экологиялық", Arabic: "ەكولوگىيالىق"},
	{Cyrillic: "іздеу", Arabic: "ٴىزدەۋ"},
	{Cyrillic: "іні", Arabic: "ٴىنى"},
	{Cyrillic: "іс", Arabic: "ٴىس"},
	{Cyrillic: "іш", Arabic: "ٴىش"},
	{Cyrillic: "ішу", Arabic: "ٴىشۋ"},
	{Cyrillic: "ғалым", Arabic: "عالىم"},
	{Cyrillic: "ғана", Arabic: "عانا"},
	{Cyrillic: "ғылым", Arabic: "عىلىم"},
	{Cyrillic: "қабырға", Arabic: "قابىرعا"},
	{Cyrillic: "қаз", Arabic: "قاز"},
	{Cyrillic: "қазан", Arabic: "قازان"},
	{Cyrillic: "қазақстан", Arabic: "قازاقستان"},
	{Cyrillic: "қазір", Arabic: "قازىر"},
	{Cyrillic: "қайда", Arabic: "قايدا"},
	{Cyrillic: "қайта", Arabic: "قايتا"},
	{Cyrillic: "қайту", Arabic: "قايتۋ"},
	{Cyrillic: "қала", Arabic: "قالا"},
	{Cyrillic: "қалай", Arabic: "قالاي"},
	{Cyrillic: "қалам", Arabic: "قالام"},
	{Cyrillic: "қалың", Arabic: "قالىڭ"},
	{Cyrillic: "қан", Arabic: "قان"},
	{Cyrillic: "қант", Arabic: "قانت"},
	{Cyrillic: "қанша", Arabic: "قانشا"},
	{Cyrillic: "қар", Arabic: "قار"},
	{Cyrillic: "қара", Arabic: "قارا"},
	{Cyrillic: "қарау", Arabic: "قاراۋ"},
	{Cyrillic: "қараша", Arabic: "قاراشا"},
	{Cyrillic: "қарбыз", Arabic: "قاربىز"},
	{Cyrillic: "қарлығаш", Arabic: "قارلىعاش"},
	{Cyrillic: "қарындас", Arabic: "قارىنداس"},
	{Cyrillic: "қарындаш", Arabic: "قارىنداش"},
	{Cyrillic: "қасық", Arabic: "قاسىق"},
	{Cyrillic: "қасқыр", Arabic: "قاسقىر"},
	{Cyrillic: "қатты", Arabic: "قاتتى"},
	{Cyrillic: "қауын", Arabic: "قاۋىن"},
	{Cyrillic: "қашан", Arabic: "قاشان"},
	{Cyrillic: "қағаз", Arabic: "قاعاز"},
	{Cyrillic: "қаңтар", Arabic: "قاڭتار"},
	{Cyrillic: "қиын", Arabic: "قىيىن"},
	{Cyrillic: "қияр", Arabic: "قىيار"},
	{Cyrillic: "қобыз", Arabic: "قوبىز"},
	{Cyrillic: "қой", Arabic: "قوي"},
	{Cyrillic: "қол", Arabic: "قول"},
	{Cyrillic: "қою", Arabic: "قويۋ"},
	{Cyrillic: "қоян", Arabic: "قويان"},
	{Cyrillic: "қоңыр", Arabic: "قوڭىر"},
	{Cyrillic: "қыз", Arabic: "قىز"},
	{Cyrillic: "қызмет", Arabic: "قىزمەت"},
	{Cyrillic: "қызыл", Arabic: "قىزىل"},
	{Cyrillic: "қызық", Arabic: "قىزىق"},
	{Cyrillic: "қызғылт", Arabic: "قىزعىلت"},
	{Cyrillic: "қымбат", Arabic: "قىمبات"},
	{Cyrillic: "қымыз", Arabic: "قىمىز"},
	{Cyrillic: "қыркүйек", Arabic: "قىركۇيەك"},
	{Cyrillic: "қырық", Arabic: "قىرىق"},
	{Cyrillic: "қыс", Arabic: "قىس"},
	{Cyrillic: "қысқа", Arabic: "قىسقا"},
	{Cyrillic: "қышқыл", Arabic: "قىشقىل"},
	{Cyrillic: "құлақ", Arabic: "قۇلاق"},
	{Cyrillic: "құм", Arabic: "قۇم"},
	{Cyrillic: "құмырсқа", Arabic: "قۇمىرسقا"},
	{Cyrillic: "құрбы", Arabic: "قۇربى"},
	{Cyrillic: "құрылысшы", Arabic: "قۇرىلىسشى"},
	{Cyrillic: "құрғақ", Arabic: "قۇرعاق"},
	{Cyrillic: "құс", Arabic: "قۇس"},
	{Cyrillic: "құқық", Arabic: "قۇقىق"},
	{Cyrillic: "үй", Arabic: "ٴۇي"},
	{Cyrillic: "үйрек", Arabic: "ۇيرەك"},
	{Cyrillic: "үкімет", Arabic: "ۇكىمەت"},
	{Cyrillic: "үлкен", Arabic: "ۇلكەن"},
	{Cyrillic: "үстел", Arabic: "ٴۇستەل"},
	{Cyrillic: "үш", Arabic: "ٴۇش"},
	{Cyrillic: "үшін", Arabic: "ٴۇشىن"},
	{Cyrillic: "ұзын", Arabic: "ۇزىن"},
	{Cyrillic: "ұйықтау", Arabic: "ۇيىقتاۋ"},
	{Cyrillic: "ұл", Arabic: "ۇل"},
	{Cyrillic: "ұмыту", Arabic: "ۇمىتۋ"},
	{Cyrillic: "ұн", Arabic: "ۇن"},
	{Cyrillic: "ұста", Arabic: "ۇستا"},
	{Cyrillic: "ұстаз", Arabic: "ۇستاز"},
	{Cyrillic: "ұстау", Arabic: "ۇستاۋ"},
	{Cyrillic: "ұшқыш", Arabic: "ۇشقىش"},
	{Cyrillic: "әдемі", Arabic: "ادەمى"},
	{Cyrillic: "әже", Arabic: "اجە"},
	{Cyrillic: "әйел", Arabic: "ايەل"},
	{Cyrillic: "әке", Arabic: "اكە"},
	{Cyrillic: "әкелу", Arabic: "اكەلۋ"},
	{Cyrillic: "әлсіз", Arabic: "ٴالسىز"},
	{Cyrillic: "ән", Arabic: "ٴان"},
	{Cyrillic: "әнші", Arabic: "ٴانشى"},
	{Cyrillic: "әнұран", Arabic: "ٴانۇران"},
	{Cyrillic: "әпке", Arabic: "اپكە"},
	{Cyrillic: "әр", Arabic: "ٴار"},
	{Cyrillic: "әрбір", Arabic: "ٴاربىر"},
	{Cyrillic: "әртіс", Arabic: "ٴارتىس"},
	{Cyrillic: "әріп", Arabic: "ٴارىپ"},
	{Cyrillic: "әрқашан", Arabic: "ارقاشان"},
	{Cyrillic: "әскер", Arabic: "اسكەر"},
	{Cyrillic: "өз", Arabic: "ٴوز"},
	{Cyrillic: "өзгертеді", Arabic: "وزگەرتەدى"},
	{Cyrillic: "өзен", Arabic: "ٴوزەن"},
	{Cyrillic: "өлең", Arabic: "ٴولەڭ"},
	{Cyrillic: "өмір", Arabic: "ٴومىر"},
	{Cyrillic: "өмірімізді", Arabic: "ومىرىمىزدى"},
	{Cyrillic: "өнерпаз", Arabic: "ٴونەرپاز"},
	{Cyrillic: "өрмекші", Arabic: "ورمەكشى"},
	{Cyrillic: "өрт", Arabic: "ٴورت"},
	{Cyrillic: "өте", Arabic: "ٴوتە"},
}
