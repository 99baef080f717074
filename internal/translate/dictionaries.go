package translate

// Entry maps one English term to its equivalent in a target language
type Entry struct {
	English    string
	Translated string
}

// Dictionary is an ordered term list for one target language. Order matters in
// sequential mode: each entry is applied to the output of the previous one.
type Dictionary []Entry

var dictionaries = map[string]Dictionary{
	"sw": {
		{"Emergency", "Dharura"},
		{"First Aid", "Huduma za Kwanza"},
		{"Hospital", "Hospitali"},
		{"Doctor", "Daktari"},
		{"Nurse", "Muuguzi"},
		{"Medicine", "Dawa"},
		{"Pain", "Maumivu"},
		{"Injury", "Jeraha"},
		{"Bleeding", "Kutokwa na damu"},
		{"Breathing", "Kupumua"},
		{"Heart", "Moyo"},
		{"Head", "Kichwa"},
		{"Chest", "Kifua"},
		{"Arm", "Mkono"},
		{"Leg", "Mguu"},
		{"Back", "Mgongo"},
		{"Stomach", "Tumbo"},
		{"Fever", "Homa"},
		{"Cough", "Kikohozi"},
		{"Help", "Msaada"},
		{"Call", "Piga simu"},
		{"Ambulance", "Gari la wagonjwa"},
		{"Emergency Room", "Chumba cha dharura"},
		{"Pharmacy", "Duka la dawa"},
		{"Treatment", "Matibabu"},
		{"Symptoms", "Dalili"},
		{"Allergy", "Mzio"},
		{"Infection", "Maambukizi"},
		{"Surgery", "Upasuaji"},
		{"X-ray", "Eksirei"},
		{"Blood pressure", "Shinikizo la damu"},
		{"Temperature", "Joto la mwili"},
		{"Pulse", "Mapigo ya moyo"},
	},
	"ki": {
		{"Emergency", "Ihinda"},
		{"First Aid", "Ũtaaro wa mbere"},
		{"Hospital", "Kĩrĩra"},
		{"Doctor", "Muganga"},
		{"Nurse", "Mũruti"},
		{"Medicine", "Ndawa"},
		{"Pain", "Rũrũ"},
		{"Injury", "Kĩronda"},
		{"Bleeding", "Gũita thakame"},
		{"Breathing", "Gũcama"},
		{"Heart", "Ngoro"},
		{"Head", "Mũtwe"},
		{"Chest", "Gĩthũri"},
		{"Arm", "Guoko"},
		{"Leg", "Kũgũrũ"},
		{"Back", "Mũgongo"},
		{"Stomach", "Nda"},
		{"Fever", "Ũrũaru"},
		{"Cough", "Kĩhũha"},
		{"Help", "Ũteithio"},
		{"Call", "Ĩta"},
		{"Ambulance", "Motokaa ya arũaru"},
		{"Emergency Room", "Nyũmba ya ihinda"},
		{"Pharmacy", "Duka rĩa ndawa"},
		{"Treatment", "Ũgima"},
		{"Symptoms", "Imenyithia"},
		{"Allergy", "Mũrimũ wa kũiguithia"},
		{"Infection", "Mũrimũ wa gũgwatania"},
		{"Surgery", "Gũtema"},
		{"X-ray", "Mũcoro wa thĩinĩ"},
		{"Blood pressure", "Hinya wa thakame"},
		{"Temperature", "Ũrugarĩ wa mwĩrĩ"},
		{"Pulse", "Gũkũra kwa ngoro"},
	},
	"luo": {
		{"Emergency", "Kech matek"},
		{"First Aid", "Kony mokwongo"},
		{"Hospital", "Ospedale"},
		{"Doctor", "Jathieth"},
		{"Nurse", "Jarit"},
		{"Medicine", "Yath"},
		{"Pain", "Rem"},
		{"Injury", "Adhonde"},
		{"Bleeding", "Remo mawuok"},
		{"Breathing", "Yuak"},
		{"Heart", "Chuny"},
		{"Head", "Wi"},
		{"Chest", "Agoko"},
		{"Arm", "Bad"},
		{"Leg", "Tiend"},
		{"Back", "Ngʼe"},
		{"Stomach", "Ich"},
		{"Fever", "Liet"},
		{"Cough", "Watiti"},
		{"Help", "Kony"},
		{"Call", "Luong"},
		{"Ambulance", "Motoka mar jotuo"},
		{"Emergency Room", "Ot mar kech matek"},
		{"Pharmacy", "Duka mar yedhe"},
		{"Treatment", "Thieth"},
		{"Symptoms", "Ranyisi mar tuo"},
		{"Allergy", "Tuo mar ok yie"},
		{"Infection", "Tuo makadho"},
		{"Surgery", "Ngʼado"},
		{"X-ray", "Neno ma iye"},
		{"Blood pressure", "Teko mar remo"},
		{"Temperature", "Liet mar dend"},
		{"Pulse", "Goyo mar chuny"},
	},
	"kam": {
		{"Emergency", "Mbesa ya haraka"},
		{"First Aid", "Usaidizi wa kwanza"},
		{"Hospital", "Kĩrĩra"},
		{"Doctor", "Muganga"},
		{"Nurse", "Mũruti"},
		{"Medicine", "Ndawa"},
		{"Pain", "Ũũa"},
		{"Injury", "Kĩvune"},
		{"Bleeding", "Kũita thakame"},
		{"Breathing", "Kũvuta"},
		{"Heart", "Moyo"},
		{"Head", "Mũtwe"},
		{"Chest", "Kĩfua"},
		{"Arm", "Mukono"},
		{"Leg", "Kũgũũ"},
		{"Back", "Mũongo"},
		{"Stomach", "Nda"},
		{"Fever", "Ũũa wa mwĩĩ"},
		{"Cough", "Kĩkũũ"},
		{"Help", "Ũtethyo"},
		{"Call", "Ĩta"},
		{"Ambulance", "Motoka ya arũaru"},
		{"Emergency Room", "Nyũmba ya mbesa"},
		{"Pharmacy", "Duka la ndawa"},
		{"Treatment", "Ũima"},
		{"Symptoms", "Imenyithia"},
		{"Allergy", "Mũrimũ wa kũũa"},
		{"Infection", "Mũrimũ wa kũgwatania"},
		{"Surgery", "Kũtema"},
		{"X-ray", "Mũcoro wa thĩinĩ"},
		{"Blood pressure", "Hinya wa thakame"},
		{"Temperature", "Ũrugarĩ wa mwĩĩ"},
		{"Pulse", "Kũkũra kwa moyo"},
	},
}

// swahiliFallback is applied without word boundaries when the dictionary pass
// leaves Swahili text unchanged.
var swahiliFallback = []Entry{
	{"emergency", "dharura"},
	{"help", "msaada"},
	{"doctor", "daktari"},
	{"hospital", "hospitali"},
	{"pain", "maumivu"},
	{"call", "piga simu"},
}

// fallbackLanguage is the only target with an unanchored fallback table
const fallbackLanguage = "sw"
