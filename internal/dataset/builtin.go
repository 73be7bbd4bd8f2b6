package dataset

import "github.com/roach88/facultymetrics/internal/roster"

// BuiltinLabel names the built-in roster in logs and export file names.
const BuiltinLabel = "ece"

// Builtin returns the Electronics & Communication Engineering roster the
// dashboard ships with. Domain strings are kept exactly as recorded,
// including "Signal processing" and "Signal Processing" as separate values.
//
// A fresh slice is returned on every call.
func Builtin() []roster.Row {
	rows := make([]roster.Row, len(builtinRows))
	copy(rows, builtinRows)
	return rows
}

var builtinRows = []roster.Row{
	{Seq: 1, Name: "Dr Binod Kumar Kanaujia", Rank: "Director, NITJ", Domain: "Communication Systems", JournalPublications: 347, ConferencePublications: 93, BookChapters: 25, ProjectsCompleted: 8, ProjectsOngoing: 3},
	{Seq: 2, Name: "Dr Arun K Khosla", Rank: "Professor", Domain: "Human–Computer Interaction (HCI)", JournalPublications: 45, ConferencePublications: 31, BookChapters: 25, ProjectsCompleted: 11, ProjectsOngoing: 2},
	{Seq: 3, Name: "Dr B S Saini", Rank: "Professor", Domain: "Signal processing", JournalPublications: 61, ConferencePublications: 56, BookChapters: 16, ProjectsCompleted: 1, ProjectsOngoing: 0},
	{Seq: 4, Name: "Dr Mamta Khosla", Rank: "Professor", Domain: "ML", JournalPublications: 56, ConferencePublications: 35, BookChapters: 11, ProjectsCompleted: 3, ProjectsOngoing: 4},
	{Seq: 5, Name: "Dr Ashish Raman", Rank: "Associate Professor & Head", Domain: "ML", JournalPublications: 84, ConferencePublications: 33, BookChapters: 15, ProjectsCompleted: 6, ProjectsOngoing: 10},
	{Seq: 6, Name: "Dr Asutosh Kar", Rank: "Associate Professor", Domain: "Signal processing", JournalPublications: 54, ConferencePublications: 50, BookChapters: 3, ProjectsCompleted: 6, ProjectsOngoing: 0},
	{Seq: 7, Name: "Dr Balwinder Raj", Rank: "Associate Professor", Domain: "Nanoelectronics", JournalPublications: 107, ConferencePublications: 51, BookChapters: 21, ProjectsCompleted: 7, ProjectsOngoing: 3},
	{Seq: 8, Name: "Dr Deepti Kakkar", Rank: "Associate Professor", Domain: "ML", JournalPublications: 36, ConferencePublications: 41, BookChapters: 22, ProjectsCompleted: 0, ProjectsOngoing: 1},
	{Seq: 9, Name: "Dr Indu Saini", Rank: "Associate Professor", Domain: "ML", JournalPublications: 38, ConferencePublications: 34, BookChapters: 8, ProjectsCompleted: 6, ProjectsOngoing: 0},
	{Seq: 10, Name: "Dr Neetu Sood", Rank: "Associate Professor", Domain: "Signal processing", JournalPublications: 31, ConferencePublications: 43, BookChapters: 9, ProjectsCompleted: 3, ProjectsOngoing: 1},
	{Seq: 11, Name: "Dr Ramesh K Sunkaria", Rank: "Associate Professor", Domain: "Signal processing", JournalPublications: 83, ConferencePublications: 73, BookChapters: 6, ProjectsCompleted: 14, ProjectsOngoing: 4},
	{Seq: 12, Name: "Dr Aijaz Mehdi Zaidi", Rank: "Assistant Professor (Grade-I)", Domain: "ML", JournalPublications: 19, ConferencePublications: 8, BookChapters: 1, ProjectsCompleted: 0, ProjectsOngoing: 1},
	{Seq: 13, Name: "Dr. Manjeet Singh", Rank: "Assistant Professor (Grade-I)", Domain: "iot", JournalPublications: 18, ConferencePublications: 13, BookChapters: 3, ProjectsCompleted: 0, ProjectsOngoing: 1},
	{Seq: 14, Name: "Dr Nitesh Kashyap", Rank: "Assistant Professor (Grade-I)", Domain: "Antenna design", JournalPublications: 17, ConferencePublications: 16, BookChapters: 1, ProjectsCompleted: 0, ProjectsOngoing: 2},
	{Seq: 15, Name: "Dr Pawan Kumar Verma", Rank: "Assistant Professor (Grade-I)", Domain: "iot", JournalPublications: 15, ConferencePublications: 17, BookChapters: 4, ProjectsCompleted: 1, ProjectsOngoing: 1},
	{Seq: 16, Name: "Dr Sateesh Kumar Awasthi", Rank: "Assistant Professor (Grade-I)", Domain: "Signal Processing", JournalPublications: 10, ConferencePublications: 18, BookChapters: 3, ProjectsCompleted: 2, ProjectsOngoing: 1},
	{Seq: 17, Name: "Dr Sukwinder Singh", Rank: "Assistant Professor (Grade-I)", Domain: "iot", JournalPublications: 12, ConferencePublications: 17, BookChapters: 1, ProjectsCompleted: 1, ProjectsOngoing: 3},
	{Seq: 18, Name: "Dr Tarun Chaudhary", Rank: "Assistant Professor (Grade-I)", Domain: "Nanoelectronics", JournalPublications: 20, ConferencePublications: 21, BookChapters: 14, ProjectsCompleted: 0, ProjectsOngoing: 1},
	{Seq: 19, Name: "Dr Amina Girdher", Rank: "Assistant Professor Grade-II", Domain: "Spectrum", JournalPublications: 7, ConferencePublications: 5, BookChapters: 0, ProjectsCompleted: 0, ProjectsOngoing: 0},
	{Seq: 20, Name: "Dr Bodile Roshan Mukindrao", Rank: "Assistant Professor (Grade-II)", Domain: "Signal processing", JournalPublications: 6, ConferencePublications: 8, BookChapters: 2, ProjectsCompleted: 0, ProjectsOngoing: 1},
	{Seq: 21, Name: "Dr. Kundan Kumar", Rank: "Assistant Professor (Grade-II)", Domain: "Antenna design", JournalPublications: 13, ConferencePublications: 9, BookChapters: 0, ProjectsCompleted: 0, ProjectsOngoing: 3},
	{Seq: 22, Name: "Dr Pheirojam Pooja", Rank: "Assistant Professor Grade-II", Domain: "Nanoelectronics", JournalPublications: 14, ConferencePublications: 1, BookChapters: 2, ProjectsCompleted: 0, ProjectsOngoing: 0},
	{Seq: 23, Name: "Dr Robin Kalyan", Rank: "Assistant Professor Grade-II", Domain: "Amplifier", JournalPublications: 5, ConferencePublications: 8, BookChapters: 0, ProjectsCompleted: 0, ProjectsOngoing: 0},
	{Seq: 24, Name: "Dr Rohit Singh", Rank: "Assistant Professor (Grade-II)", Domain: "Communication Systems", JournalPublications: 25, ConferencePublications: 6, BookChapters: 1, ProjectsCompleted: 0, ProjectsOngoing: 2},
	{Seq: 25, Name: "Dr Sachchidanand", Rank: "Assistant Professor Grade-II", Domain: "Beam conductors", JournalPublications: 0, ConferencePublications: 0, BookChapters: 0, ProjectsCompleted: 0, ProjectsOngoing: 0},
	{Seq: 26, Name: "Dr Sumon Modak", Rank: "Assistant Professor Grade-II", Domain: "Antenna design", JournalPublications: 17, ConferencePublications: 8, BookChapters: 0, ProjectsCompleted: 0, ProjectsOngoing: 0},
	{Seq: 27, Name: "Dr. V Narasimha Nayak", Rank: "Assistant Professor Grade-II", Domain: "Communication Systems", JournalPublications: 8, ConferencePublications: 8, BookChapters: 0, ProjectsCompleted: 0, ProjectsOngoing: 0},
}
